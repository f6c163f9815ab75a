package forkpath

// Version is the current release of Forkpath.
var Version = "0.1.0"
