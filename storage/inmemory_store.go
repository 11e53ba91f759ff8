package storage

import (
	"strings"
	"sync"

	"github.com/tidwall/sjson"
)

type InmemoryRoster struct {
	mu      sync.Mutex
	members []Member
}

func NewInmemoryRoster() *InmemoryRoster {
	return &InmemoryRoster{
		members: make([]Member, 0),
	}
}

func (i *InmemoryRoster) Create(name string, age uint64, walletAddress string) Member {
	member := Member{
		Name:          name,
		Age:           age,
		WalletAddress: normalize(walletAddress),
	}

	i.mu.Lock()
	i.members = append(i.members, member)
	i.mu.Unlock()

	return member
}

func (i *InmemoryRoster) Delete(walletAddress string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	index := i.indexOf(walletAddress)
	if index < 0 {
		return false
	}

	i.members = append(i.members[:index], i.members[index+1:]...)
	return true
}

func (i *InmemoryRoster) SignAttendance(walletAddress string) (Member, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	index := i.indexOf(walletAddress)
	if index < 0 {
		return Member{}, false
	}

	i.members[index].AttendanceCount++
	return i.members[index], true
}

func (i *InmemoryRoster) Get(walletAddress string) (Member, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	index := i.indexOf(walletAddress)
	if index < 0 {
		return Member{}, false
	}

	return i.members[index], true
}

// Members returns a copy of the roster in insertion order.
func (i *InmemoryRoster) Members() []Member {
	i.mu.Lock()
	defer i.mu.Unlock()

	members := make([]Member, len(i.members))
	copy(members, i.members)

	return members
}

func (i *InmemoryRoster) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	return len(i.members)
}

func (i *InmemoryRoster) Backup() (values []byte, err error) {
	values = []byte("[]")

	for _, member := range i.Members() {
		// -1 appends
		values, err = sjson.SetBytes(values, "-1", member)
		if err != nil {
			return nil, err
		}
	}

	return values, nil
}

// indexOf must be called with mu held.
func (i *InmemoryRoster) indexOf(walletAddress string) int {
	key := normalize(walletAddress)

	for n := range i.members {
		if i.members[n].WalletAddress == key {
			return n
		}
	}

	return -1
}

func normalize(walletAddress string) string {
	return strings.ToLower(walletAddress)
}

var _ Roster = (*InmemoryRoster)(nil)
