package urls_test

import (
	"fmt"

	"github.com/katalvlaran/lvkit/urls"
)

func ExampleRootDomain() {
	d, _ := urls.RootDomain("https://blog.shop.example.co.uk/")
	fmt.Println(d)
	// Output: example.co.uk
}

func ExampleWithQuery() {
	u, _ := urls.WithQuery("https://example.com/list?page=1", map[string]string{"page": "2"})
	fmt.Println(u)
	// Output: https://example.com/list?page=2
}
