package storage

// Member is a single entry of the roster. WalletAddress is always lowercase.
type Member struct {
	Name            string `json:"name"`
	Age             uint64 `json:"age"`
	WalletAddress   string `json:"wallet_address"`
	AttendanceCount uint64 `json:"attendance_count"`
}

// Roster owns the collection of members. Wallet addresses are compared case
// insensitively; lookups act on the first match in insertion order.
type Roster interface {
	// Create appends a new member with no attendance. It does not check for
	// an existing member with the same wallet address.
	Create(name string, age uint64, walletAddress string) Member

	// Delete removes the first member with walletAddress, reporting whether
	// one was found.
	Delete(walletAddress string) bool

	// SignAttendance increments the attendance of the first member with
	// walletAddress.
	SignAttendance(walletAddress string) (Member, bool)

	Get(walletAddress string) (Member, bool)
	Members() []Member
	Len() int

	// Backup renders the roster as a JSON array.
	Backup() ([]byte, error)
}
