package supports_test

import (
	"fmt"

	"github.com/katalvlaran/lvkit/supports"
)

func ExampleLabel() {
	label, _ := supports.Label(supports.UserGroups, "superadmin")
	fmt.Println(label)
	fmt.Println(supports.Has(supports.Environments, "staging"))
	// Output:
	// Super Administrator
	// true
}
