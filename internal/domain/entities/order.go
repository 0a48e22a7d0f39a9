package entities

import (
	"errors"
	"time"
)

var (
	ErrOrderRecordNotFound   = errors.New("visma pay order record not found")
	ErrOrderAlreadyFinalized = errors.New("checkout order already finalized")
	ErrCheckoutOrderNotFound = errors.New("checkout order not found")
)

// OrderState is the terminal outcome of a payment attempt.
//
// Accepted maps to the shop's "paid" state. Authorized means funds are
// reserved but not captured yet; a later manual settlement moves the
// order to accepted. Failed covers authentication and gateway failures.

type OrderState string

const (
	OrderStateAccepted   OrderState = "accepted"
	OrderStateAuthorized OrderState = "authorized"
	OrderStateFailed     OrderState = "failed"
)

// OrderRecord maps a shop cart to the Visma Pay order number and the
// charge amount snapshotted at payment initiation.
//
// Storage model (DynamoDB):
//   - PK: cart_id
//
// At most one record exists per cart; re-initiating payment overwrites
// the mapping in place. Amount is in currency minor units.

type OrderRecord struct {
	CartID      string    `json:"cart_id"`
	OrderNumber string    `json:"order_number"`
	Amount      int64     `json:"amount"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderMessage is one line of the append-only reconciliation log kept
// per cart. Messages are never mutated or deleted.
//
// Storage model (DynamoDB):
//   - PK: cart_id
//   - SK: id (write timestamp + random suffix, keeps append order)

type OrderMessage struct {
	CartID  string    `json:"cart_id"`
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

// CheckoutOrder is the terminal order the surrounding shop keeps per
// cart. Creation is guarded by a uniqueness constraint on cart_id so
// racing return/notify callbacks finalize at most once.

type CheckoutOrder struct {
	CartID    string     `json:"cart_id"`
	State     OrderState `json:"state"`
	Amount    int64      `json:"amount"`
	SecureKey string     `json:"secure_key"`
	CreatedAt time.Time  `json:"created_at"`
}

// ReturnOutcome is the result of processing one payment return or
// notify callback: the terminal state plus the human-readable
// reconciliation message appended to the order log.

type ReturnOutcome struct {
	State   OrderState `json:"state"`
	Message string     `json:"message"`
}

// SettlementResult reports a manual capture attempt. The message is
// admin-facing and may carry the gateway's own error text.

type SettlementResult struct {
	Settled bool   `json:"settled"`
	Message string `json:"message"`
}
