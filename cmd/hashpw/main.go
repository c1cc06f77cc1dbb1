// Command hashpw prints the keyed hash for a plaintext password, for
// provisioning the password field of a domain record.
//
// Usage:
//
//	HASH_SALT=... hashpw <plaintext>
package main

import (
	"fmt"
	"os"

	"github.com/candles/rsvp-system/internal/identity"
)

func main() {
	salt := os.Getenv("HASH_SALT")
	if salt == "" {
		fmt.Fprintln(os.Stderr, "hashpw: HASH_SALT is not set")
		os.Exit(1)
	}
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <plaintext>")
		os.Exit(2)
	}

	fmt.Println(identity.NewHasher(salt).Hash(os.Args[1]))
}
