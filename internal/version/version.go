package version

// Version is the seqlab release tag, overridable at link time:
//
//	go build -ldflags "-X seqlab/internal/version.Version=v0.5.0"
var Version = "0.4.0-dev"
