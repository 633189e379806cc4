// Package dashboard implements the retailer session and order panel.
//
// A Panel owns the session for its lifetime: the authentication buffers, the
// bearer token, the order list and the new-order buffer. Nothing is persisted.
//
// Mutations (Register, Login, CreateOrder) never hand back authoritative data.
// After a mutation the panel either resets local state or re-runs FetchOrders;
// the order list is only ever replaced by what the backend returned.
package dashboard
