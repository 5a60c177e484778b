package auth

import "testing"

func TestHashPassword_VerifiesAndSalts(t *testing.T) {
	h1, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	h2, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	if !CheckPassword("s3cret", h1) || !CheckPassword("s3cret", h2) {
		t.Fatalf("both hashes must verify against the original password")
	}
	if h1 == "s3cret" {
		t.Fatalf("hash must not equal the plaintext")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	h, err := HashPassword("right")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if CheckPassword("wrong", h) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	for _, h := range []string{"", "not-a-hash", "$2b$12$tooshort", "$9z$99$garbage"} {
		if CheckPassword("anything", h) {
			t.Fatalf("malformed hash %q must resolve to false", h)
		}
	}
}
