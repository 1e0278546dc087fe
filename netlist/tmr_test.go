package netlist

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func buildChain(g *Graph) {
	_ = g.AddPrimeIO("a", In)
	_ = g.AddPrimeIO("b", In)
	_ = g.AddPrimeIO("c", In)
	_ = g.AddPrimeIO("d", In)
	_ = g.AddPrimeIO("e", In)
	_ = g.AddPrimeIO("z", Out)
	_ = g.AddCfg("u1", []string{"a", "b", "c"}, []string{"t"}, "c2")
	_ = g.AddCfg("u2", []string{"d", "t", "e"}, []string{"z"}, "57")
}

// S5 — TMR equivalence: triplicating a block must not change any
// primary output across the full input space.
var _ = Describe("S5: TMR equivalence", func() {
	It("preserves outputs on every input vector after triplicating u1", func() {
		plain := newTestGraph("plain")
		buildChain(plain)
		Expect(plain.Diagnostics()).To(BeEmpty())

		tripled := newTestGraph("tripled")
		buildChain(tripled)
		Expect(tripled.Diagnostics()).To(BeEmpty())
		Expect(tripled.Triplicate("u1")).To(Succeed())

		inputs := []string{"a", "b", "c", "d", "e"}
		for mask := 0; mask < 1<<len(inputs); mask++ {
			var assignments []InputAssignment
			for i, id := range inputs {
				bit := (mask >> uint(i)) & 1
				assignments = append(assignments, InputAssignment{id, bit})
			}

			plainErrs := plain.Simulate(assignments)
			tripledErrs := tripled.Simulate(assignments)

			Expect(plainErrs).To(BeEmpty())
			Expect(tripledErrs).To(BeEmpty())
			Expect(tripled.nets["z"]).To(Equal(plain.nets["z"]),
				"mismatch for input vector %v", assignments)
		}
	})

	It("removes the original block and wires a majority voter in its place", func() {
		g := newTestGraph("structure")
		buildChain(g)
		Expect(g.Triplicate("u1")).To(Succeed())

		_, stillExists := g.nodes["u1"]
		Expect(stillExists).To(BeFalse())

		for _, suffix := range []string{"_tripd780", "_tripd781", "_tripd782"} {
			_, ok := g.nodes["u1"+suffix]
			Expect(ok).To(BeTrue())
		}

		Expect(g.Gates()).NotTo(BeEmpty())
		Expect(g.drivenBy["t"]).To(Equal("u1_tripd780_or0"))
	})
})
