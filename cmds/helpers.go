package cmds

import "fmt"

func Var[T any](name string) *T {
	return Checked(name, func(T) error {
		return nil
	})
}

// Checked is Var with check run on each parsed value; a failing check is a command error
func Checked[T any](name string, check func(T) error) *T {
	var value T

	// set
	Define(name, Func(func(v T) error {
		if err := check(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		value = v
		return nil
	}))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Toggle is the state of a switch. Set reports whether it was given at all.
type Toggle struct {
	On  bool
	Set bool
}

func Switch(name string) *Toggle {
	var value Toggle

	// set true
	Define(name, Func(func() {
		value = Toggle{On: true, Set: true}
	}))

	// set false
	Define("!"+name, Func(func() {
		value = Toggle{On: false, Set: true}
	}))

	return &value
}

func Collect[T any](name string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
