package bufficornanalytics

// Version is the toolkit release, overridable at build time with
// -ldflags "-X github.com/CaronSch/ethdenver-bufficornanalytics.Version=...".
var Version = "v0.1.0"
