package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/RaidanPro1/CPA-YePortal/internal/auth"
	"github.com/RaidanPro1/CPA-YePortal/internal/config"
)

// create-admin prints the bcrypt hash to configure for the "admin" account:
//
//	go run ./cmd/create-admin -password 'S3cret-pass'
//	echo 'S3cret-pass' | go run ./cmd/create-admin
func main() {
	password := flag.String("password", "", "admin password (read from stdin when empty)")
	flag.Parse()

	pw := *password
	if pw == "" && flag.NArg() > 0 {
		pw = flag.Arg(0)
	}
	if pw == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("Failed to read password: %v", err)
		}
		pw = strings.TrimRight(line, "\r\n")
	}

	if err := auth.ValidatePassword(pw); err != nil {
		log.Fatalf("Password rejected: %v", err)
	}

	hash, err := auth.HashPassword(pw)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println("Admin password hash created.")
	fmt.Println("Set it in config/config.yaml:")
	fmt.Printf("  auth:\n    adminPasswordHash: %q\n", hash)
	fmt.Println("or export it:")
	fmt.Printf("  export %sAUTH_ADMINPASSWORDHASH='%s'\n", config.EnvPrefix, hash)
}
