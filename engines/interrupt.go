package engines

type Interrupt struct {
	// Break is raised by the ^ instruction
	Break bool
	// Yield is raised periodically so long runs can be cancelled
	Yield bool
}

var (
	InterruptBreak = &Interrupt{
		Break: true,
	}
	InterruptYield = &Interrupt{
		Yield: true,
	}
)

const yieldInterval = 4096
