package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skymaps/checkcls/compare"
)

func testResult() compare.Result {
	res := compare.Result{Field: "f1f1"}
	for l := 2.0; l <= 50; l++ {
		res.Ell = append(res.Ell, l)
		res.Recov = append(res.Recov, 1/(l*l))
		res.Input = append(res.Input, 1.02/(l*l))
		res.FracErr = append(res.FracErr, 2)
	}
	return res
}

func TestNewRenderer(t *testing.T) {
	_, err := NewRenderer("pyplot")
	assert.NoError(t, err)
	_, err = NewRenderer("native")
	assert.NoError(t, err)
	_, err = NewRenderer("gnuplot")
	assert.Error(t, err)
}

func TestNativeRendererWritesFigurePair(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer("native")
	if err != nil {
		t.Fatal(err.Error())
	}

	opt := Options{OutDir: dir, FracErrLim: 15}
	if err := r.Render(testResult(), opt); err != nil {
		t.Fatal(err.Error())
	}
	if err := r.Finish(); err != nil {
		t.Fatal(err.Error())
	}

	for _, name := range []string{"f1f1.png", "f1f1_fracerr.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("figure %s not written: %s", name, err.Error())
		}
		assert.True(t, info.Size() > 0)
	}
}
