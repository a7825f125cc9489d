// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Errorf("unexpected hash prefix: %s", hash)
	}

	// Same password must produce a different hash (random salt).
	hash2, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == hash2 {
		t.Error("two hashes of the same password are identical")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !CheckPassword("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestCheckPasswordMalformed(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=19456,t=2,p=1$short",
		"$bcrypt$v=19$m=19456,t=2,p=1$AAAA$BBBB",
		"$argon2id$v=19$m=abc,t=2,p=1$AAAA$BBBB",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$BBBB",
	}
	for _, encoded := range cases {
		if CheckPassword("anything", encoded) {
			t.Errorf("malformed hash %q verified true", encoded)
		}
	}
}

func TestVerifyArgon2Errors(t *testing.T) {
	if _, err := VerifyArgon2("pw", "not-a-hash"); err == nil {
		t.Error("expected error for invalid format")
	}
	if _, err := VerifyArgon2("pw", "$bcrypt$v=19$m=1,t=1,p=1$AAAA$BBBB"); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if NeedsRehash(hash) {
		t.Error("fresh hash reported as needing rehash")
	}

	// Old parameters.
	old := "$argon2id$v=19$m=65536,t=1,p=4$c29tZXNhbHQ$aGFzaGhhc2hoYXNoaGFzaA"
	if !NeedsRehash(old) {
		t.Error("hash with stale parameters not flagged")
	}

	if !NeedsRehash("garbage") {
		t.Error("malformed hash not flagged")
	}
}
