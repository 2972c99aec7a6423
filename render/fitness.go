package render

import (
	"sync"

	"github.com/lixenwraith/artevo/genetic"
)

// MSE returns the mean squared error between two equally sized surfaces
// over the R, G and B channels. Alpha is ignored.
func MSE(cand, ref *Buffer) float64 {
	err := 0.0
	for i, c := range cand.Pix {
		r := ref.Pix[i]
		dr := int(c>>16&0xFF) - int(r>>16&0xFF)
		dg := int(c>>8&0xFF) - int(r>>8&0xFF)
		db := int(c&0xFF) - int(r&0xFF)
		err += float64(dr*dr + dg*dg + db*db)
	}
	return err / float64(len(cand.Pix))
}

// ImageEvaluator scores chromosomes by rasterizing them and comparing
// against a fixed reference image. Safe for concurrent use: each
// evaluation borrows a scratch surface from a pool.
type ImageEvaluator struct {
	ref     *Buffer
	scratch sync.Pool
}

// NewImageEvaluator creates an evaluator against the given reference
func NewImageEvaluator(ref *Buffer) *ImageEvaluator {
	ev := &ImageEvaluator{ref: ref}
	ev.scratch.New = func() any {
		return NewBuffer(ref.Width, ref.Height)
	}
	return ev
}

// Ref returns the reference surface
func (ev *ImageEvaluator) Ref() *Buffer {
	return ev.ref
}

// Evaluate implements genetic.Evaluator: lower scores are closer matches
func (ev *ImageEvaluator) Evaluate(c *genetic.Chromosome) float64 {
	buf := ev.scratch.Get().(*Buffer)
	Chromosome(buf, c)
	score := MSE(buf, ev.ref)
	ev.scratch.Put(buf)
	return score
}
