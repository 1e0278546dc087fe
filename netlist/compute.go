package netlist

// anyHighZ reports whether any of vals is HighZ.
func anyHighZ(vals []Value) bool {
	for _, v := range vals {
		if v == HighZ {
			return true
		}
	}
	return false
}

// evalCfg computes a Cfg block's output. A 1-input Cfg uses the raw
// input bit directly rather than a LUT lookup — the config digit is
// effectively ignored in that case. This is a deliberate, preserved
// quirk rather than a guessed-at fix.
func evalCfg(inputs []Value, configRev string) Value {
	if anyHighZ(inputs) {
		return HighZ
	}
	if len(inputs) == 1 {
		return inputs[0]
	}
	idx := bitsToIndex(inputs)
	if configRev[idx] == '1' {
		return One
	}
	return Zero
}

// evalAri computes the three outputs of an arithmetic cell from its
// five inputs and its 20-bit reversed config. inputs must be ordered
// A, B, C, D, FCI.
func evalAri(inputs []Value, configRev string) (y, s, fco Value) {
	if anyHighZ(inputs) {
		return HighZ, HighZ, HighZ
	}

	a, b, c, d, fci := inputs[0] == One, inputs[1] == One, inputs[2] == One, inputs[3] == One, inputs[4] == One
	bit := func(i int) bool { return configRev[i] == '1' }

	index := func(a, b, c, d bool) int {
		idx := 0
		for _, v := range []bool{a, b, c, d} {
			idx <<= 1
			if v {
				idx |= 1
			}
		}
		return idx
	}

	f0 := bit(index(false, b, c, d))
	f1 := bit(index(true, b, c, d))
	init16 := bit(16)
	init17 := bit(17)
	init18 := bit(18)
	init19 := bit(19)

	p := init19 || (!init19 && init18)
	g := (f0 && init16 && init17) || (init17 && !init16) || (f1 && init16 && init17)

	yBool := bit(index(a, b, c, d))
	sBool := yBool != fci // XOR
	fcoBool := (!p && g) || (p && fci)

	return BoolToValue(yBool), BoolToValue(sBool), BoolToValue(fcoBool)
}

// evalTri computes a tri-state buffer's output: data if ctrl is One,
// HighZ otherwise (including when ctrl itself is HighZ).
func evalTri(data, ctrl Value) Value {
	if ctrl == One {
		return data
	}
	return HighZ
}

// evalGate computes a primitive AND/OR gate's output.
func evalGate(op GateOp, inputs []Value) Value {
	if anyHighZ(inputs) {
		return HighZ
	}

	switch op {
	case And:
		for _, v := range inputs {
			if v != One {
				return Zero
			}
		}
		return One
	default: // Or
		for _, v := range inputs {
			if v == One {
				return One
			}
		}
		return Zero
	}
}
