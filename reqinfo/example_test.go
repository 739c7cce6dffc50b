package reqinfo_test

import (
	"fmt"
	"net/http/httptest"

	"github.com/katalvlaran/lvkit/reqinfo"
)

func ExampleClientIP() {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.2:51000" // reverse proxy on a private network
	r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.9")
	r.Header.Set("X-Forwarded-Proto", "https")

	ip, _ := reqinfo.ClientIP(r)
	fmt.Println(ip, reqinfo.Scheme(r))
	// Output: 198.51.100.7 https
}
