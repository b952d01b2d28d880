package isp

import (
	"context"
	"fmt"
	"io"
)

// Lesson narrates the interface segregation example.
type Lesson struct{}

func (Lesson) Slug() string  { return "isp" }
func (Lesson) Title() string { return "Interface Segregation Principle" }

// Demonstrate routes a student athlete through both narrow consumers and a
// pure athlete through the one capability it actually has.
func (Lesson) Demonstrate(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sam := StudentAthlete{Name: "Sam"}
	fmt.Fprintln(w, Enroll(sam, "algorithms"))
	fmt.Fprintln(w, Register(sam, "track"))

	pro := FullTimeAthlete{Name: "Alex"}
	fmt.Fprintln(w, Register(pro, "marathon"))
	fmt.Fprintln(w, "Alex never implemented Study; no consumer ever asked for it.")

	return nil
}
