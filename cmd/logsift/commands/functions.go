package commands

// ReportOptions mirrors the flags of the report command.
type ReportOptions struct {
	Input        string
	Output       string
	AddressStart string
	AddressMask  string
	TimeStart    string
	TimeEnd      string
	Filter       string
	Format       string
	Workers      int
}

// Shared function variables for main package to assign
var (
	RunReport         func(ReportOptions) error
	InitConfiguration func() error
	TestConfiguration func() error
)
