package cls

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/phil-mansfield/table"
)

// Spectra is a set of angular power spectra sampled on a shared multipole
// grid. Every slice in Cls has the same length as L.
type Spectra struct {
	L   []float64
	Cls map[string][]float64
}

// Fields returns the spectrum names in sorted order.
func (sp *Spectra) Fields() []string {
	fields := make([]string, 0, len(sp.Cls))
	for k := range sp.Cls {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// EllRange returns the smallest and largest multipole in the grid.
func (sp *Spectra) EllRange() (min, max float64) {
	min, max = sp.L[0], sp.L[0]
	for _, l := range sp.L {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	return min, max
}

// ReadRecov reads a RecovCls table written by Flask. The first line is a
// header of the form "# l Cl-f1z1f1z1 Cl-f1z1f2z1 ...", naming every column
// of the numeric table below it. The "Cl-" prefixes are stripped and each
// name is paired with its column in file order. The column named "l" becomes
// the multipole grid.
func ReadRecov(path string) (*Spectra, error) {
	names, err := readHeader(path)
	if err != nil {
		return nil, err
	}

	colIdxs := make([]int, len(names))
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(path, colIdxs, nil)
	if err != nil {
		return nil, err
	}
	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("the RecovCls file %s has no data rows", path)
	}

	sp := &Spectra{Cls: map[string][]float64{}}
	for i, name := range names {
		if name == "l" {
			sp.L = cols[i]
		} else {
			sp.Cls[name] = cols[i]
		}
	}
	if sp.L == nil {
		return nil, fmt.Errorf(
			"the header of %s does not name an 'l' column", path,
		)
	}

	return sp, nil
}

// readHeader parses the comment line at the top of a RecovCls table into
// column names.
func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("the RecovCls file %s is empty", path)
	}

	line := strings.Replace(scanner.Text(), "Cl-", "", -1)
	names := []string{}
	for _, tok := range strings.Fields(line) {
		if tok == "#" {
			continue
		}
		names = append(names, tok)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf(
			"the first line of %s does not contain column names", path,
		)
	}

	return names, nil
}

// ReadInput reads the theory Cls that were fed to the simulation, one
// two-column (l, Cl) file per field, found at <prefix><field>.dat. Fields
// with no matching file are returned in missing instead of being silently
// dropped. All matched files must share one multipole grid: a file whose
// grid disagrees with the first match is reported with a warning.
func ReadInput(prefix string, fields []string) (
	sp *Spectra, missing []string, err error,
) {
	sp = &Spectra{Cls: map[string][]float64{}}

	for _, field := range fields {
		matches, err := filepath.Glob(prefix + field + ".dat")
		if err != nil {
			return nil, nil, err
		}
		if len(matches) == 0 {
			missing = append(missing, field)
			continue
		}

		fmt.Println("Reading input cls from:", matches[0])
		cols, err := table.ReadTable(matches[0], []int{0, 1}, nil)
		if err != nil {
			return nil, nil, err
		}
		if len(cols[0]) == 0 {
			return nil, nil, fmt.Errorf(
				"the input cl file %s has no data rows", matches[0],
			)
		}

		if sp.L != nil && !sameGrid(sp.L, cols[0]) {
			log.Printf(
				"Warning: the input cl file %s does not share the "+
					"multipole grid of the other input files.", matches[0],
			)
		}
		sp.L = cols[0]
		sp.Cls[field] = cols[1]
	}

	return sp, missing, nil
}

func sameGrid(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	return a[0] == b[0] && a[len(a)-1] == b[len(b)-1]
}

// SameEllRange reports whether two spectra cover exactly the same multipole
// range. On a mismatch both ranges are printed for diagnosis.
func SameEllRange(recov, input *Spectra) bool {
	recovMin, recovMax := recov.EllRange()
	inputMin, inputMax := input.EllRange()

	if recovMin == inputMin && recovMax == inputMax {
		return true
	}
	fmt.Println("Different ell ranges.")
	fmt.Println("Recov:", recovMin, recovMax)
	fmt.Println("Input:", inputMin, inputMax)
	return false
}

// Overlap returns the multipole range covered by both spectra: the larger of
// the two minima and the smaller of the two maxima.
func Overlap(recov, input *Spectra) (ellMin, ellMax float64) {
	recovMin, recovMax := recov.EllRange()
	inputMin, inputMax := input.EllRange()

	ellMin, ellMax = recovMin, recovMax
	if inputMin > ellMin {
		ellMin = inputMin
	}
	if inputMax < ellMax {
		ellMax = inputMax
	}
	return ellMin, ellMax
}

// EllGrid enumerates the inclusive unit-step grid [ellMin, ellMax].
func EllGrid(ellMin, ellMax float64) []float64 {
	ells := []float64{}
	for l := ellMin; l <= ellMax; l++ {
		ells = append(ells, l)
	}
	return ells
}
