package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest provides development mode, which keeps config files of the
// host out of tests
type ModuleForTest struct {
	dscope.Module
}

func ForTest(t *testing.T) ModuleForTest {
	t.Helper()
	return ModuleForTest{}
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
