package pixwin

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeWindow(t *testing.T, dir string, nside, ellMax int) {
	text := ""
	for l := 0; l <= ellMax; l++ {
		text += fmt.Sprintf("%d %g\n", l, 1/(1+float64(l)))
	}
	path := filepath.Join(dir, FileName(nside))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err.Error())
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "pixel_window_n0512.dat", FileName(512))
	assert.Equal(t, "pixel_window_n1024.dat", FileName(1024))
}

func TestLoadAndSquared(t *testing.T) {
	dir := t.TempDir()
	writeWindow(t, dir, 4, 10)

	w, err := Load(dir, 4)
	if err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, 4, w.NSide)

	sq, err := w.Squared(2, 5)
	if err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, 4, len(sq))
	for i, l := range []float64{2, 3, 4, 5} {
		wl := 1 / (1 + l)
		assert.InDelta(t, wl*wl, sq[i], 1e-12)
	}
}

func TestSquaredOutOfRange(t *testing.T) {
	dir := t.TempDir()
	writeWindow(t, dir, 4, 10)

	w, err := Load(dir, 4)
	if err != nil {
		t.Fatal(err.Error())
	}

	_, err = w.Squared(2, 11)
	assert.Error(t, err, "grid extends past the table")
	_, err = w.Squared(-1, 5)
	assert.Error(t, err, "grid starts before the table")
}

func TestLoadNonContiguousTable(t *testing.T) {
	dir := t.TempDir()
	text := "0 1.0\n1 0.9\n3 0.8\n4 0.7\n"
	path := filepath.Join(dir, FileName(8))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err.Error())
	}

	_, err := Load(dir, 8)
	assert.Error(t, err, "a gap in the multipole column must be rejected")
}

func TestLoadMissingTable(t *testing.T) {
	_, err := Load(t.TempDir(), 512)
	assert.Error(t, err)
}

func TestOnes(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1}, Ones(3))
}
