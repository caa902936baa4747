package common

// Version is the current version of minihttpd
const Version = "1.2.0"

// Name is used for the home directory, log file names and env prefixes
const Name = "minihttpd"
