package app

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/luma/rollcall/protocol"
	"github.com/luma/rollcall/storage"
)

type Operation string

const (
	OpCreate         Operation = "create"
	OpDelete         Operation = "delete"
	OpSignAttendance Operation = "sign_attendance"
)

// Roster applies create, delete and sign_attendance commands to a roster of
// members keyed by wallet address.
type Roster struct {
	roster  storage.Roster
	emitter Emitter
	log     *zap.Logger
}

func NewRoster(roster storage.Roster, emitter Emitter, log *zap.Logger) *Roster {
	return &Roster{
		roster:  roster,
		emitter: emitter,
		log:     log,
	}
}

func (r *Roster) Advance(ctx context.Context, req *protocol.Request) (protocol.Status, error) {
	sender, err := req.Sender()
	if err != nil {
		return protocol.StatusReject, err
	}

	cmd, err := decode(req)
	if err != nil {
		return protocol.StatusReject, err
	}

	log := r.log.With(zap.String("sender", sender))
	log.Debug("Decoded command", zap.String("command", cmd.Raw()))

	op, ok := cmd.Discriminant("method", "operation")
	if !ok {
		return protocol.StatusReject, ErrMissingDiscriminant
	}

	switch Operation(op) {
	case OpCreate:
		return r.create(cmd, log)

	case OpDelete:
		return r.delete(cmd, log)

	case OpSignAttendance:
		// Attendance is always signed by the sender for themselves
		return r.signAttendance(sender, log)

	default:
		log.Warn("Unknown method", zap.String("method", op))
		return protocol.StatusAccept, nil
	}
}

// Inspect reports the current roster.
func (r *Roster) Inspect(ctx context.Context, req *protocol.Request) (protocol.Status, error) {
	if _, err := req.Payload(); err != nil {
		return protocol.StatusReject, err
	}

	backup, err := r.roster.Backup()
	if err != nil {
		return protocol.StatusReject, fmt.Errorf("Failed to back up roster: %w", err)
	}

	if err := r.emitter.Report(ctx, protocol.EncodeHex(backup)); err != nil {
		return protocol.StatusReject, fmt.Errorf("Failed to report roster: %w", err)
	}

	return protocol.StatusAccept, nil
}

func (r *Roster) create(cmd *protocol.Command, log *zap.Logger) (protocol.Status, error) {
	name, nameErr := cmd.String("name")
	age, ageErr := cmd.Uint("age")
	walletAddress, walletErr := cmd.String("wallet_address")

	if err := multierr.Combine(nameErr, ageErr, walletErr); err != nil {
		return protocol.StatusReject, fmt.Errorf("Failed to read create command: %w", err)
	}

	member := r.roster.Create(name, age, walletAddress)

	log.Info("Created member",
		zap.String("walletAddress", member.WalletAddress),
		zap.Int("rosterSize", r.roster.Len()))

	return protocol.StatusAccept, nil
}

func (r *Roster) delete(cmd *protocol.Command, log *zap.Logger) (protocol.Status, error) {
	walletAddress, err := cmd.String("wallet_address")
	if err != nil {
		return protocol.StatusReject, fmt.Errorf("Failed to read delete command: %w", err)
	}

	if !r.roster.Delete(walletAddress) {
		log.Info("Wallet address not found", zap.String("walletAddress", walletAddress))
		return protocol.StatusAccept, nil
	}

	log.Info("Deleted member", zap.String("walletAddress", walletAddress))

	return protocol.StatusAccept, nil
}

func (r *Roster) signAttendance(walletAddress string, log *zap.Logger) (protocol.Status, error) {
	member, ok := r.roster.SignAttendance(walletAddress)
	if !ok {
		log.Info("Wallet address not found", zap.String("walletAddress", walletAddress))
		return protocol.StatusAccept, nil
	}

	log.Info("Signed attendance",
		zap.String("walletAddress", member.WalletAddress),
		zap.Uint64("attendanceCount", member.AttendanceCount))

	return protocol.StatusAccept, nil
}

var _ Handler = (*Roster)(nil)
