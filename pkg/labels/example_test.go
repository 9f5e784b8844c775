package labels_test

import (
	"fmt"

	"github.com/dienstplan/dienstplan/pkg/labels"
)

func ExampleAssign() {
	ls := []labels.Label{
		{X: 8.00, Text: "08:00"},
		{X: 8.05, Text: "08:03"},
		{X: 10.00, Text: "10:00"},
	}
	for _, l := range labels.Assign(ls, labels.DefaultMinDistance) {
		fmt.Println(l.Text, l.Level)
	}
	// Output:
	// 08:00 0
	// 08:03 1
	// 10:00 0
}
