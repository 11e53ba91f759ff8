package protocol_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/luma/rollcall/protocol"
)

var _ = Describe("Codec", func() {
	Describe("DecodeText()", func() {
		It("strips the marker and decodes the hex", func() {
			Expect(protocol.DecodeText("0x35")).To(Equal("5"))
		})

		It("strips any two characters, not just 0x", func() {
			Expect(protocol.DecodeText("zz35")).To(Equal("5"))
		})

		It("decodes an empty payload after the marker", func() {
			Expect(protocol.DecodeText("0x")).To(Equal(""))
		})

		It("returns an error if the payload is shorter than the marker", func() {
			_, err := protocol.DecodeText("0")
			Expect(err).To(MatchError(protocol.ErrPayloadTooShort))

			_, err = protocol.DecodeText("")
			Expect(err).To(MatchError(protocol.ErrPayloadTooShort))
		})

		It("returns an error for odd length hex", func() {
			_, err := protocol.DecodeText("0x353")
			Expect(errors.Is(err, protocol.ErrMalformedHex)).To(BeTrue())
		})

		It("returns an error for non hex characters", func() {
			_, err := protocol.DecodeText("0xzz")
			Expect(errors.Is(err, protocol.ErrMalformedHex)).To(BeTrue())
		})

		It("returns an error for bytes that are not UTF-8", func() {
			_, err := protocol.DecodeText("0xfffe")
			Expect(err).To(MatchError(protocol.ErrInvalidUTF8))
		})
	})

	Describe("EncodeText()", func() {
		It("prefixes the hex with 0x", func() {
			Expect(protocol.EncodeText("5")).To(Equal("0x35"))
		})

		It("round trips through DecodeText", func() {
			for _, text := range []string{
				`{"method":"add","value_1":2.0,"value_2":3.0}`,
				`{"method":"create","name":"Zoë","age":21,"wallet_address":"0xABC"}`,
				`[]`,
				``,
			} {
				Expect(protocol.DecodeText(protocol.EncodeText(text))).To(Equal(text))
			}
		})
	})
})
