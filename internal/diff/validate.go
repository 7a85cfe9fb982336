package diff

import "fmt"

// validateOps checks the AlignOp invariants against the source sequence
// lengths and returns an error on the first violation.
func validateOps(ops []AlignOp, leftLen, rightLen int) error {
	i, j := 0, 0
	for oi, op := range ops {
		if op.I1 != i || op.J1 != j {
			return fmt.Errorf("op[%d]: ranges not contiguous (have %d,%d want %d,%d)", oi, op.I1, op.J1, i, j)
		}
		if op.I2 < op.I1 || op.J2 < op.J1 {
			return fmt.Errorf("op[%d]: inverted range", oi)
		}

		switch op.Kind {
		case OpEqual:
			if op.I2-op.I1 != op.J2-op.J1 {
				return fmt.Errorf("op[%d]: OpEqual requires equal-length ranges", oi)
			}
			if op.I2 == op.I1 {
				return fmt.Errorf("op[%d]: OpEqual requires non-empty ranges", oi)
			}
		case OpReplace:
			if op.I2 == op.I1 || op.J2 == op.J1 {
				return fmt.Errorf("op[%d]: OpReplace requires both ranges non-empty", oi)
			}
		case OpInsert:
			if op.I2 != op.I1 || op.J2 == op.J1 {
				return fmt.Errorf("op[%d]: OpInsert requires empty left and non-empty right range", oi)
			}
		case OpDelete:
			if op.I2 == op.I1 || op.J2 != op.J1 {
				return fmt.Errorf("op[%d]: OpDelete requires non-empty left and empty right range", oi)
			}
		default:
			return fmt.Errorf("op[%d]: unknown kind %d", oi, op.Kind)
		}

		i = op.I2
		j = op.J2
	}

	if i != leftLen {
		return fmt.Errorf("ops do not reconstruct left sequence (covered %d of %d)", i, leftLen)
	}
	if j != rightLen {
		return fmt.Errorf("ops do not reconstruct right sequence (covered %d of %d)", j, rightLen)
	}
	return nil
}
