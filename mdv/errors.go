package mdv

import "fmt"

func errorf(op string, err error) error {
	return fmt.Errorf("mdv: %s: %w", op, err)
}
