package field_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fraclab/internal/field"
	"github.com/san-kum/fraclab/internal/fractal"
)

func TestFieldSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Field Suite")
}

var _ = Describe("Generator", func() {
	var g *field.Generator

	BeforeEach(func() {
		g = field.NewGenerator()
	})

	DescribeTable("keeps every count inside the iteration budget",
		func(size, iterations int32) {
			f, err := g.NewField(context.Background(), size, iterations)
			Expect(err).NotTo(HaveOccurred())
			for _, v := range f.Data {
				Expect(v).To(SatisfyAll(
					BeNumerically(">=", 0),
					BeNumerically("<", iterations),
				))
			}
		},
		Entry("tiny grid", int32(1), int32(5)),
		Entry("small grid", int32(16), int32(20)),
		Entry("uneven grid", int32(33), int32(77)),
		Entry("single step", int32(24), int32(1)),
	)

	It("produces identical fields across worker counts", func() {
		reference, err := g.NewField(context.Background(), 50, 64)
		Expect(err).NotTo(HaveOccurred())

		for _, workers := range []int{1, 3, 7, 16} {
			g.Workers = workers
			f, err := g.NewField(context.Background(), 50, 64)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Equal(reference)).To(BeTrue(), "workers=%d diverged", workers)
		}
	})

	It("rejects invalid arguments before writing", func() {
		out := []int32{-1, -1, -1}
		err := g.Generate(context.Background(), 2, 10, out)
		Expect(err).To(MatchError(field.ErrInvalidArgument))
		Expect(out).To(Equal([]int32{-1, -1, -1}))
	})

	It("honors region selection", func() {
		g.Region = fractal.SpiralMinibrot
		zoomed, err := g.NewField(context.Background(), 24, 50)
		Expect(err).NotTo(HaveOccurred())

		g.Region = fractal.FullView
		full, err := g.NewField(context.Background(), 24, 50)
		Expect(err).NotTo(HaveOccurred())

		Expect(zoomed.Equal(full)).To(BeFalse())
	})
})
