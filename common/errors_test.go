package common_test

import (
	"errors"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/goorgb/goorgb/common"
)

var _ = Describe("Errors", func() {
	It("describes connection failures with the address", func() {
		err := &common.ConnectionError{Addr: `localhost:6742`, Err: io.EOF}

		Expect(err.Error()).To(ContainSubstring(`localhost:6742`))
		Expect(errors.Is(err, io.EOF)).To(BeTrue())
	})

	It("unwraps the transport error behind a communication failure", func() {
		err := &common.CommunicationError{Err: io.ErrUnexpectedEOF}

		Expect(errors.Is(err, io.ErrUnexpectedEOF)).To(BeTrue())
	})

	It("formats protocol errors from a reason", func() {
		err := common.NewProtocolError("unknown direction %d", 9)

		Expect(err.Reason).To(Equal(`unknown direction 9`))
		Expect(err.Error()).To(ContainSubstring(`unknown direction 9`))
	})

	It("names the operation and versions for unsupported operations", func() {
		err := &common.UnsupportedOperationError{
			Operation: `profile control`,
			Current:   1,
			Required:  2,
		}

		Expect(err.Error()).To(ContainSubstring(`profile control`))
		Expect(err.Error()).To(ContainSubstring(`version 2`))
	})
})
