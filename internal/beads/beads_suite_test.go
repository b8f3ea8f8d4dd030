package beads_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBeads(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Beads Suite")
}
