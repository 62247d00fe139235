package version

// Version is the build version, overridden at build time via
// -ldflags "-X github.com/livp123/logsift/internal/version.Version=v1.2.3".
// Version 为构建版本号，可在编译时通过 ldflags 覆盖。
var Version = "dev"
