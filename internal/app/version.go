package app

// Version is the fibseq release, overridden at build time with
// -ldflags "-X github.com/agbru/fibseq/internal/app.Version=...".
var Version = "dev"
