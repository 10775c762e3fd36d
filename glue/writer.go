package glue

import (
	"fmt"
	"io"
)

// Result is the glued-together probability distribution over a reference
// histogram's bins, built from several overlapping Wang-Landau windows.
type Result[T any] struct {
	// GluedLog10Probability is log10(p) per bin of Borders, normalized so
	// that sum(10^v) == 1. A bin no contributing window covered stays NaN.
	GluedLog10Probability []float64
	// Borders holds BinCount()+1 edge values; bin i is [Borders[i], Borders[i+1]).
	Borders []T
	// Log10Vec holds each contributing window's height-corrected,
	// re-normalized log10 curve, in the same order as LeftList.
	Log10Vec [][]float64
	// LeftList[i] is the index into Borders where Log10Vec[i] starts.
	LeftList []int

	TotalSteps         int
	TotalStepsAccepted int
	TotalStepsRejected int
}

// Write renders the result as whitespace-separated columns — bin_left,
// bin_right, glued_log_density, then one curve_N column per contributing
// window, "NONE" where that window didn't cover the bin — suitable for
// plotting with gnuplot or similar.
func (r *Result[T]) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "#bin_left bin_right glued_log_density"); err != nil {
		return err
	}
	for i := range r.Log10Vec {
		if _, err := fmt.Fprintf(w, " curve_%d", i); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "#total_steps %d\n", r.TotalSteps); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "#total_steps_accepted %d\n", r.TotalStepsAccepted); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "#total_steps_rejected %d\n", r.TotalStepsRejected); err != nil {
		return err
	}
	fracAcc := float64(r.TotalStepsAccepted) / float64(r.TotalSteps)
	if _, err := fmt.Fprintf(w, "#total_acception_fraction %e\n", fracAcc); err != nil {
		return err
	}
	fracRej := float64(r.TotalStepsRejected) / float64(r.TotalSteps)
	if _, err := fmt.Fprintf(w, "#total_rejection_fraction %e\n", fracRej); err != nil {
		return err
	}

	for i := 0; i < len(r.GluedLog10Probability); i++ {
		if _, err := fmt.Fprintf(w, "%v %v %e", r.Borders[i], r.Borders[i+1], r.GluedLog10Probability[i]); err != nil {
			return err
		}
		for j := range r.Log10Vec {
			var err error
			if r.LeftList[j] <= i && i-r.LeftList[j] < len(r.Log10Vec[j]) {
				_, err = fmt.Fprintf(w, " %e", r.Log10Vec[j][i-r.LeftList[j]])
			} else {
				_, err = fmt.Fprint(w, " NONE")
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
