package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mini-praisells/internal/auctionerrors"
	model "mini-praisells/internal/models"
	"mini-praisells/utils"

	_ "github.com/mattn/go-sqlite3"
)

// Compile-time check: *SQLiteStore must satisfy Store.
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore is a file-backed implementation of the three aggregate stores.
// Driver-level failures are reported as ErrStoreUnavailable so the request
// layer can map them to a generic failure envelope.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if necessary creates) the database at path and
// bootstraps the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite store: database path cannot be empty")
	}

	utils.Info("opening SQLite database", map[string]any{"path": path})
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite store: unable to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite store: unable to ping database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite store: unable to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, auctionerrors.ErrStoreUnavailable, err)
}

// GetUser returns the ledger record for a user
func (s *SQLiteStore) GetUser(userID string) (model.User, error) {
	var u model.User
	err := s.db.QueryRow(queryGetUser, userID).Scan(&u.UserID, &u.DisplayName, &u.Balance,
		&u.TotalBidsPlaced, &u.TotalWins, &u.CreatedAt, &u.LastActivityAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, storeErr("get user", err)
	}
	return u, nil
}

// CreateUser inserts a new ledger record
func (s *SQLiteStore) CreateUser(user model.User) error {
	_, err := s.db.Exec(queryInsertUser, user.UserID, user.DisplayName, user.Balance,
		user.TotalBidsPlaced, user.TotalWins, user.CreatedAt, user.LastActivityAt)
	if err != nil {
		return storeErr("create user", err)
	}
	return nil
}

// TouchActivity updates a user's lastActivityAt timestamp
func (s *SQLiteStore) TouchActivity(userID string, at time.Time) error {
	res, err := s.db.Exec(queryTouchActivity, at, userID)
	if err != nil {
		return storeErr("touch activity", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("touch activity for user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return nil
}

// Credit adds amount to the user's balance and returns the new balance
func (s *SQLiteStore) Credit(userID string, amount int64) (int64, error) {
	res, err := s.db.Exec(queryCredit, amount, userID)
	if err != nil {
		return 0, storeErr("credit user", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, fmt.Errorf("credit user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return s.balance(userID)
}

// DebitForBid subtracts amount from the user's balance and increments
// totalBidsPlaced, returning the new balance
func (s *SQLiteStore) DebitForBid(userID string, amount int64) (int64, error) {
	res, err := s.db.Exec(queryDebitForBid, amount, userID, amount)
	if err != nil {
		return 0, storeErr("debit user", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either the user is missing or the guarded update found the
		// balance short; disambiguate for the caller.
		if _, err := s.GetUser(userID); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("debit user %s: %w", userID, auctionerrors.ErrInsufficientFunds)
	}
	return s.balance(userID)
}

func (s *SQLiteStore) balance(userID string) (int64, error) {
	var balance int64
	if err := s.db.QueryRow(queryGetBalance, userID).Scan(&balance); err != nil {
		return 0, storeErr("read balance", err)
	}
	return balance, nil
}

// GetAuction returns an auction by ID, active or not
func (s *SQLiteStore) GetAuction(auctionID string) (model.Auction, error) {
	a, err := scanAuction(s.db.QueryRow(queryGetAuction, auctionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, storeErr("get auction", err)
	}
	return a, nil
}

// ListActive returns all auctions with the active flag set
func (s *SQLiteStore) ListActive() ([]model.Auction, error) {
	rows, err := s.db.Query(queryListActiveAuctions)
	if err != nil {
		return nil, storeErr("list active auctions", err)
	}
	defer rows.Close()

	auctions := make([]model.Auction, 0)
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, storeErr("scan auction", err)
		}
		auctions = append(auctions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list active auctions", err)
	}
	return auctions, nil
}

// CreateAuction inserts a new auction record
func (s *SQLiteStore) CreateAuction(auction model.Auction) error {
	var lastBidAt sql.NullTime
	if auction.LastBidAt != nil {
		lastBidAt = sql.NullTime{Time: *auction.LastBidAt, Valid: true}
	}
	_, err := s.db.Exec(queryInsertAuction, auction.AuctionID, auction.SellerLabel, auction.Title,
		auction.Description, auction.ReserveBid, auction.CurrentHighBid, auction.HighestBidderID,
		auction.Active, auction.EndsAt, auction.CreatedAt, lastBidAt)
	if err != nil {
		return storeErr("create auction", err)
	}
	return nil
}

// SetHighBid records the auction's current high bid and bidder
func (s *SQLiteStore) SetHighBid(auctionID string, amount int64, bidderID string, lastBidAt *time.Time) error {
	var (
		res sql.Result
		err error
	)
	if lastBidAt != nil {
		res, err = s.db.Exec(querySetHighBidWithTime, amount, bidderID, *lastBidAt, auctionID)
	} else {
		res, err = s.db.Exec(querySetHighBid, amount, bidderID, auctionID)
	}
	if err != nil {
		return storeErr("set high bid", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("set high bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

// InsertBid records a new bid
func (s *SQLiteStore) InsertBid(bid model.Bid) error {
	var deactivatedAt sql.NullTime
	if bid.DeactivatedAt != nil {
		deactivatedAt = sql.NullTime{Time: *bid.DeactivatedAt, Valid: true}
	}
	_, err := s.db.Exec(queryInsertBid, bid.BidID, bid.UserID, bid.AuctionID, bid.Amount,
		bid.Active, bid.CreatedAt, deactivatedAt, string(bid.DeactivationReason))
	if err != nil {
		return storeErr("insert bid", err)
	}
	return nil
}

// GetActiveBid returns the user's active bid on an auction, if any
func (s *SQLiteStore) GetActiveBid(userID, auctionID string) (model.Bid, error) {
	b, err := scanBid(s.db.QueryRow(queryGetActiveBid, userID, auctionID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get active bid for user %s on auction %s: %w",
			userID, auctionID, auctionerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, storeErr("get active bid", err)
	}
	return b, nil
}

// DeactivateBid marks a bid inactive with a reason and timestamp
func (s *SQLiteStore) DeactivateBid(bidID string, reason model.DeactivationReason, at time.Time) error {
	res, err := s.db.Exec(queryDeactivateBid, at, string(reason), bidID)
	if err != nil {
		return storeErr("deactivate bid", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("deactivate bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return nil
}

// ListActiveByAuction returns all active bids on an auction
func (s *SQLiteStore) ListActiveByAuction(auctionID string) ([]model.Bid, error) {
	return s.listBids(queryListActiveBidsByAuction, auctionID)
}

// ListActiveByUser returns all active bids placed by a user
func (s *SQLiteStore) ListActiveByUser(userID string) ([]model.Bid, error) {
	return s.listBids(queryListActiveBidsByUser, userID)
}

func (s *SQLiteStore) listBids(query, key string) ([]model.Bid, error) {
	rows, err := s.db.Query(query, key)
	if err != nil {
		return nil, storeErr("list bids", err)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, storeErr("scan bid", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list bids", err)
	}
	return bids, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuction(row rowScanner) (model.Auction, error) {
	var (
		a         model.Auction
		lastBidAt sql.NullTime
	)
	err := row.Scan(&a.AuctionID, &a.SellerLabel, &a.Title, &a.Description, &a.ReserveBid,
		&a.CurrentHighBid, &a.HighestBidderID, &a.Active, &a.EndsAt, &a.CreatedAt, &lastBidAt)
	if err != nil {
		return model.Auction{}, err
	}
	if lastBidAt.Valid {
		at := lastBidAt.Time
		a.LastBidAt = &at
	}
	return a, nil
}

func scanBid(row rowScanner) (model.Bid, error) {
	var (
		b             model.Bid
		deactivatedAt sql.NullTime
		reason        string
	)
	err := row.Scan(&b.BidID, &b.UserID, &b.AuctionID, &b.Amount, &b.Active,
		&b.CreatedAt, &deactivatedAt, &reason)
	if err != nil {
		return model.Bid{}, err
	}
	if deactivatedAt.Valid {
		at := deactivatedAt.Time
		b.DeactivatedAt = &at
	}
	b.DeactivationReason = model.DeactivationReason(reason)
	return b, nil
}
