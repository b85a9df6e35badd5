package utils

import (
	"math/rand"
	"time"
)

const accessCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateAccessCode returns a short shareable code for teachers who do not
// pick one themselves. Codes are not required to be unique across classes;
// they only gate entry to the class that carries them.
func GenerateAccessCode() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, accessCodeLength)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}
	return string(b)
}
