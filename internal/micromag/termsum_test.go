package micromag_test

import (
	"slices"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/micromag/internal/dynamics"
	"github.com/san-kum/micromag/internal/energy"
	"github.com/san-kum/micromag/internal/micromag"
)

func mustExchange(A float64, name string) *energy.Exchange {
	ex, err := energy.NewExchange(A, micromag.WithName(name))
	Expect(err).NotTo(HaveOccurred())
	return ex
}

var _ = Describe("TermSum", func() {
	var (
		h   *micromag.Hamiltonian
		ex1 *energy.Exchange
		ex2 *energy.Exchange
	)

	BeforeEach(func() {
		var err error
		h, err = micromag.NewHamiltonian()
		Expect(err).NotTo(HaveOccurred())
		ex1 = mustExchange(1e-12, "ex")
		ex2 = mustExchange(2e-12, "ex2")
	})

	Describe("Add", func() {
		It("keeps insertion order", func() {
			Expect(h.Add(ex1)).To(Succeed())
			Expect(h.Add(ex2)).To(Succeed())
			Expect(h.Terms()).To(Equal([]micromag.Term{ex1, ex2}))
		})

		It("renders members joined by +", func() {
			Expect(h.Add(ex1, ex2)).To(Succeed())
			Expect(h.Len()).To(Equal(2))

			inner := strings.Trim(ex1.Latex(), "$")
			Expect(h.Latex()).To(Equal("$" + inner + " + " + inner + "$"))
			Expect(h.Repr()).To(Equal("Exchange(A=1e-12) + Exchange(A=2e-12)"))
		})

		It("rejects a duplicate name", func() {
			Expect(h.Add(ex1)).To(Succeed())
			dup := mustExchange(5e-12, "ex")

			err := h.Add(dup)
			Expect(err).To(MatchError(micromag.ErrDuplicateTerm))
			var de *micromag.DuplicateTermError
			Expect(err).To(BeAssignableToTypeOf(de))
			Expect(h.Len()).To(Equal(1))
		})

		It("rejects duplicates within one call atomically", func() {
			err := h.Add(ex1, ex2, mustExchange(3e-12, "ex2"))
			Expect(err).To(MatchError(micromag.ErrDuplicateTerm))
			Expect(h.Len()).To(BeZero())
		})

		It("rejects a term of another family", func() {
			Expect(h.Add(ex1)).To(Succeed())
			d, err := dynamics.NewDamping(0.5)
			Expect(err).NotTo(HaveOccurred())

			err = h.AddTerm(d)
			Expect(err).To(MatchError(micromag.ErrFamilyMismatch))
			Expect(err.Error()).To(ContainSubstring("only energy terms"))
			Expect(h.Len()).To(Equal(1))
		})

		It("rejects nil", func() {
			Expect(h.AddTerm(nil)).To(MatchError(micromag.ErrNilTerm))
		})
	})

	Describe("Plus", func() {
		It("chains and returns the receiver", func() {
			got, err := h.Plus(ex1)
			Expect(err).NotTo(HaveOccurred())
			got, err = got.Plus(ex2)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeIdenticalTo(h))
			Expect(h.Names()).To(Equal([]string{"ex", "ex2"}))
		})
	})

	Describe("Remove", func() {
		BeforeEach(func() {
			Expect(h.Add(ex1, ex2)).To(Succeed())
		})

		It("removes by identity", func() {
			Expect(h.Remove(ex1)).To(Succeed())
			Expect(h.Terms()).To(Equal([]micromag.Term{ex2}))
		})

		It("removes by name", func() {
			Expect(h.RemoveName("ex2")).To(Succeed())
			Expect(h.Names()).To(Equal([]string{"ex"}))
		})

		It("does not remove an equal but distinct term", func() {
			twin := mustExchange(1e-12, "ex")
			Expect(h.Remove(twin)).To(MatchError(micromag.ErrNotFound))
			Expect(h.Len()).To(Equal(2))
		})

		It("fails for an absent name", func() {
			err := h.RemoveName("zeeman")
			Expect(err).To(MatchError(micromag.ErrNotFound))
			Expect(err.Error()).To(ContainSubstring("zeeman"))
		})

		It("supports Minus chaining", func() {
			got, err := h.Minus(ex1)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Names()).To(Equal([]string{"ex2"}))
		})
	})

	Describe("iteration", func() {
		It("is restartable and does not mutate", func() {
			Expect(h.Add(ex1, ex2)).To(Succeed())
			first := slices.Collect(h.All())
			second := slices.Collect(h.All())
			Expect(first).To(Equal(second))
			Expect(first).To(HaveLen(2))
			Expect(h.Len()).To(Equal(2))
		})

		It("stops early", func() {
			Expect(h.Add(ex1, ex2)).To(Succeed())
			n := 0
			for range h.All() {
				n++
				break
			}
			Expect(n).To(Equal(1))
		})
	})

	Describe("Combine", func() {
		It("clones the other sum's members", func() {
			other, err := micromag.NewHamiltonian(ex2)
			Expect(err).NotTo(HaveOccurred())
			Expect(h.Add(ex1)).To(Succeed())

			Expect(h.Combine(other)).To(Succeed())
			Expect(h.Names()).To(Equal([]string{"ex", "ex2"}))

			got, ok := h.Get("ex2")
			Expect(ok).To(BeTrue())
			Expect(got).NotTo(BeIdenticalTo(ex2))
			Expect(got.Repr()).To(Equal(ex2.Repr()))
			Expect(other.Len()).To(Equal(1))
		})

		It("is atomic on collision", func() {
			other, err := micromag.NewHamiltonian(mustExchange(9e-12, "ex"))
			Expect(err).NotTo(HaveOccurred())
			Expect(h.Add(ex1)).To(Succeed())

			Expect(h.Combine(other)).To(MatchError(micromag.ErrDuplicateTerm))
			Expect(h.Len()).To(Equal(1))
		})
	})

	Describe("Equal", func() {
		It("ignores order", func() {
			a, _ := micromag.NewHamiltonian(ex1, ex2)
			b, _ := micromag.NewHamiltonian(mustExchange(2e-12, "ex2"), mustExchange(1e-12, "ex"))
			Expect(a.Equal(b)).To(BeTrue())

			Expect(b.RemoveName("ex")).To(Succeed())
			Expect(a.Equal(b)).To(BeFalse())
		})

		It("is symmetric when names repeat on one side", func() {
			a, _ := micromag.NewHamiltonian(ex1, ex2)
			b, _ := micromag.NewHamiltonian(mustExchange(1e-12, "ex"), mustExchange(1e-12, "ex3"))

			Expect(a.Equal(b)).To(Equal(b.Equal(a)))
			Expect(a.Equal(b)).To(BeFalse())
		})
	})

	Describe("renaming a member", func() {
		BeforeEach(func() {
			Expect(h.Add(ex1, ex2)).To(Succeed())
		})

		It("rejects a name another member holds", func() {
			err := ex2.SetParam("name", "ex")
			Expect(err).To(MatchError(micromag.ErrDuplicateTerm))
			var de *micromag.DuplicateTermError
			Expect(err).To(BeAssignableToTypeOf(de))

			Expect(h.Names()).To(Equal([]string{"ex", "ex2"}))
			Expect(ex2.Name()).To(Equal("ex2"))
		})

		It("accepts a fresh name and keeps its own", func() {
			Expect(ex2.SetParam("name", "ex2")).To(Succeed())
			Expect(ex2.SetParam("name", "bulk")).To(Succeed())
			Expect(h.Names()).To(Equal([]string{"ex", "bulk"}))
			Expect(h.Contains("bulk")).To(BeTrue())
		})

		It("is unrestricted once the member is removed", func() {
			Expect(h.Remove(ex2)).To(Succeed())
			Expect(ex2.SetParam("name", "ex")).To(Succeed())
			Expect(h.Names()).To(Equal([]string{"ex"}))
		})

		It("leaves clones free of the sum", func() {
			cp := ex2.Clone()
			Expect(cp.(micromag.Configurable).SetParam("name", "ex")).To(Succeed())
			Expect(h.Names()).To(Equal([]string{"ex", "ex2"}))
		})
	})

	Describe("ownership", func() {
		It("rejects a member of another sum", func() {
			Expect(h.Add(ex1)).To(Succeed())
			other, err := micromag.NewHamiltonian()
			Expect(err).NotTo(HaveOccurred())

			Expect(other.Add(ex1)).To(MatchError(micromag.ErrTermOwned))
			Expect(other.Len()).To(BeZero())
		})

		It("releases a removed member", func() {
			Expect(h.Add(ex1)).To(Succeed())
			Expect(h.RemoveName("ex")).To(Succeed())
			other, _ := micromag.NewHamiltonian()
			Expect(other.Add(ex1)).To(Succeed())
		})
	})

	Describe("nil terms", func() {
		It("rejects a nil pointer without panicking", func() {
			var nilEx *energy.Exchange
			Expect(func() {
				Expect(h.Add(nilEx)).To(MatchError(micromag.ErrNilTerm))
			}).NotTo(Panic())
			Expect(h.Len()).To(BeZero())
		})

		It("rejects a nil pointer on Remove", func() {
			Expect(h.Add(ex1)).To(Succeed())
			var nilEx *energy.Exchange
			Expect(h.Remove(nilEx)).To(MatchError(micromag.ErrNilTerm))
			Expect(h.Len()).To(Equal(1))
		})

		It("rejects an untyped nil", func() {
			Expect(h.TermSum.Add(nil)).To(MatchError(micromag.ErrNilTerm))
		})
	})

	It("renders an empty sum as zero", func() {
		Expect(h.Latex()).To(Equal("$0$"))
		Expect(h.Repr()).To(Equal("0"))
	})
})

var _ = Describe("Dynamics", func() {
	It("accepts only dynamics terms", func() {
		d, err := micromag.NewDynamics()
		Expect(err).NotTo(HaveOccurred())

		p, _ := dynamics.NewPrecession(dynamics.DefaultGamma0)
		damp, _ := dynamics.NewDamping(0.02)
		Expect(d.Add(p, damp)).To(Succeed())

		ex, _ := energy.NewExchange(1e-11)
		Expect(d.AddTerm(ex)).To(MatchError(micromag.ErrFamilyMismatch))
		Expect(d.Names()).To(Equal([]string{"precession", "damping"}))
	})
})

var _ = Describe("System", func() {
	It("pairs a Hamiltonian with its Dynamics", func() {
		s, err := micromag.NewSystem("macrospin")
		Expect(err).NotTo(HaveOccurred())

		z, _ := energy.NewZeeman([3]float64{0, 0, 1e5})
		damp, _ := dynamics.NewDamping(0.1)
		Expect(s.Hamiltonian.Add(z)).To(Succeed())
		Expect(s.Dynamics.Add(damp)).To(Succeed())

		Expect(s.Name()).To(Equal("macrospin"))
		Expect(s.Repr()).To(Equal("System(name='macrospin', hamiltonian=Zeeman(H=(0, 0, 100000)), dynamics=Damping(alpha=0.1))"))
		Expect(s.Latex()).To(HavePrefix("H = $"))
	})
})
