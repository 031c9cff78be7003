package models_test

import (
	"testing"

	"github.com/draganm/something/internal/models"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestModels(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Models Suite")
}

var _ = Describe("Existence", func() {
	It("keeps the numeric values used as exit status and score", func() {
		Expect(int(models.DefinitelyNothing)).To(Equal(0))
		Expect(int(models.PossiblyNothing)).To(Equal(1))
		Expect(int(models.PossiblySomething)).To(Equal(2))
		Expect(int(models.DefinitelySomething)).To(Equal(3))
	})

	It("names values outside the scale", func() {
		Expect(models.PossiblySomething.String()).To(Equal("possibly_something"))
		Expect(models.Existence(7).String()).To(Equal("existence(7)"))
	})
})

var _ = Describe("State", func() {
	It("walks init to done", func() {
		var visited []models.State
		s := models.StateInit
		for s != models.StateDone {
			s = s.Next()
			visited = append(visited, s)
		}
		Expect(visited).To(Equal([]models.State{
			models.StateFirstLineAcquired,
			models.StateSecondLineAcquired,
			models.StateCombined,
			models.StateDone,
		}))
	})

	It("stays done", func() {
		Expect(models.StateDone.Next()).To(Equal(models.StateDone))
	})
})
