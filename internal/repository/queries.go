package repository

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id                TEXT PRIMARY KEY,
	display_name      TEXT NOT NULL,
	balance           INTEGER NOT NULL,
	total_bids_placed INTEGER NOT NULL DEFAULT 0,
	total_wins        INTEGER NOT NULL DEFAULT 0,
	created_at        DATETIME NOT NULL,
	last_activity_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS auctions (
	id                TEXT PRIMARY KEY,
	seller_label      TEXT NOT NULL,
	title             TEXT NOT NULL,
	description       TEXT NOT NULL,
	reserve_bid       INTEGER NOT NULL,
	current_high_bid  INTEGER NOT NULL DEFAULT 0,
	highest_bidder_id TEXT NOT NULL DEFAULT '',
	active            INTEGER NOT NULL DEFAULT 1,
	ends_at           DATETIME NOT NULL,
	created_at        DATETIME NOT NULL,
	last_bid_at       DATETIME
);

CREATE TABLE IF NOT EXISTS bids (
	id                  TEXT PRIMARY KEY,
	user_id             TEXT NOT NULL,
	auction_id          TEXT NOT NULL,
	amount              INTEGER NOT NULL,
	active              INTEGER NOT NULL DEFAULT 1,
	created_at          DATETIME NOT NULL,
	deactivated_at      DATETIME,
	deactivation_reason TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_bids_auction_active ON bids (auction_id, active);
CREATE INDEX IF NOT EXISTS idx_bids_user_active ON bids (user_id, active);
`

const (
	// User queries
	queryGetUser = `
		SELECT id, display_name, balance, total_bids_placed, total_wins, created_at, last_activity_at
		FROM users
		WHERE id = ?`

	queryInsertUser = `
		INSERT INTO users (id, display_name, balance, total_bids_placed, total_wins, created_at, last_activity_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	queryTouchActivity = `
		UPDATE users SET last_activity_at = ? WHERE id = ?`

	queryCredit = `
		UPDATE users SET balance = balance + ? WHERE id = ?`

	queryDebitForBid = `
		UPDATE users
		SET balance = balance - ?, total_bids_placed = total_bids_placed + 1
		WHERE id = ? AND balance >= ?`

	queryGetBalance = `
		SELECT balance FROM users WHERE id = ?`

	// Auction queries
	queryGetAuction = `
		SELECT id, seller_label, title, description, reserve_bid, current_high_bid,
		       highest_bidder_id, active, ends_at, created_at, last_bid_at
		FROM auctions
		WHERE id = ?`

	queryListActiveAuctions = `
		SELECT id, seller_label, title, description, reserve_bid, current_high_bid,
		       highest_bidder_id, active, ends_at, created_at, last_bid_at
		FROM auctions
		WHERE active = 1
		ORDER BY created_at`

	queryInsertAuction = `
		INSERT INTO auctions (id, seller_label, title, description, reserve_bid, current_high_bid,
		                      highest_bidder_id, active, ends_at, created_at, last_bid_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	querySetHighBid = `
		UPDATE auctions SET current_high_bid = ?, highest_bidder_id = ? WHERE id = ?`

	querySetHighBidWithTime = `
		UPDATE auctions SET current_high_bid = ?, highest_bidder_id = ?, last_bid_at = ? WHERE id = ?`

	// Bid queries
	queryInsertBid = `
		INSERT INTO bids (id, user_id, auction_id, amount, active, created_at, deactivated_at, deactivation_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	queryGetActiveBid = `
		SELECT id, user_id, auction_id, amount, active, created_at, deactivated_at, deactivation_reason
		FROM bids
		WHERE user_id = ? AND auction_id = ? AND active = 1`

	queryDeactivateBid = `
		UPDATE bids SET active = 0, deactivated_at = ?, deactivation_reason = ? WHERE id = ?`

	queryListActiveBidsByAuction = `
		SELECT id, user_id, auction_id, amount, active, created_at, deactivated_at, deactivation_reason
		FROM bids
		WHERE auction_id = ? AND active = 1
		ORDER BY created_at`

	queryListActiveBidsByUser = `
		SELECT id, user_id, auction_id, amount, active, created_at, deactivated_at, deactivation_reason
		FROM bids
		WHERE user_id = ? AND active = 1
		ORDER BY created_at`
)
