package storage_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/luma/rollcall/storage"
)

var _ = Describe("storage / InmemoryRoster", func() {
	var roster *storage.InmemoryRoster

	BeforeEach(func() {
		roster = storage.NewInmemoryRoster()
	})

	It("an empty roster backs up as []", func() {
		value, err := roster.Backup()
		Expect(err).To(Succeed())
		Expect(string(value)).To(Equal(`[]`))
	})

	Describe("Create()", func() {
		It("lowercases the wallet address and starts attendance at zero", func() {
			member := roster.Create("Ada", 36, "0xABCdef")
			Expect(member).To(Equal(storage.Member{
				Name:          "Ada",
				Age:           36,
				WalletAddress: "0xabcdef",
			}))
			Expect(roster.Members()).To(Equal([]storage.Member{member}))
		})

		It("does not reject a duplicate wallet address", func() {
			roster.Create("Ada", 36, "0xABC")
			roster.Create("Grace", 45, "0xabc")
			Expect(roster.Len()).To(Equal(2))
		})
	})

	Describe("Delete()", func() {
		It("removes a member regardless of the casing used", func() {
			roster.Create("Ada", 36, "0xABCDEF")

			Expect(roster.Delete("0xabcdef")).To(BeTrue())
			Expect(roster.Len()).To(Equal(0))
		})

		It("removes exactly one entry", func() {
			roster.Create("Ada", 36, "0x01")
			roster.Create("Grace", 45, "0x02")
			roster.Create("Linus", 20, "0x03")

			Expect(roster.Delete("0x02")).To(BeTrue())
			Expect(roster.Members()).To(HaveLen(2))

			_, ok := roster.Get("0x02")
			Expect(ok).To(BeFalse())
		})

		It("leaves the roster unchanged for an unknown wallet", func() {
			roster.Create("Ada", 36, "0x01")
			before := roster.Members()

			Expect(roster.Delete("0x99")).To(BeFalse())
			Expect(roster.Members()).To(Equal(before))
		})

		It("removes only the first of duplicate wallets", func() {
			roster.Create("Ada", 36, "0xABC")
			roster.Create("Grace", 45, "0xabc")

			Expect(roster.Delete("0xAbC")).To(BeTrue())
			Expect(roster.Members()).To(Equal([]storage.Member{
				{Name: "Grace", Age: 45, WalletAddress: "0xabc"},
			}))
		})
	})

	Describe("SignAttendance()", func() {
		It("increments attendance by one per call", func() {
			roster.Create("Ada", 36, "0xABC")

			for n := 0; n < 10; n++ {
				roster.SignAttendance("0xabc")
			}

			member, ok := roster.Get("0xABC")
			Expect(ok).To(BeTrue())
			Expect(member.AttendanceCount).To(Equal(uint64(10)))
		})

		It("returns the updated member", func() {
			roster.Create("Ada", 36, "0xABC")

			member, ok := roster.SignAttendance("0xAbc")
			Expect(ok).To(BeTrue())
			Expect(member.AttendanceCount).To(Equal(uint64(1)))
		})

		It("leaves the roster unchanged for an unknown wallet", func() {
			roster.Create("Ada", 36, "0x01")
			before := roster.Members()

			_, ok := roster.SignAttendance("0x02")
			Expect(ok).To(BeFalse())
			Expect(roster.Members()).To(Equal(before))
		})

		It("only counts attendance for the first of duplicate wallets", func() {
			roster.Create("Ada", 36, "0xABC")
			roster.Create("Grace", 45, "0xabc")

			roster.SignAttendance("0xabc")

			members := roster.Members()
			Expect(members[0].AttendanceCount).To(Equal(uint64(1)))
			Expect(members[1].AttendanceCount).To(Equal(uint64(0)))
		})
	})

	Describe("Backup()", func() {
		It("renders members as a JSON array", func() {
			roster.Create("Ada", 36, "0xABC")
			roster.SignAttendance("0xabc")
			roster.Create("Grace", 45, "0xDEF")

			value, err := roster.Backup()
			Expect(err).To(Succeed())
			Expect(string(value)).To(MatchJSON(`[
				{"name":"Ada","age":36,"wallet_address":"0xabc","attendance_count":1},
				{"name":"Grace","age":45,"wallet_address":"0xdef","attendance_count":0}
			]`))
		})
	})
})
