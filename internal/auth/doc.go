// Package auth owns the visitor's identity on this device.
//
// A SessionStore checks credentials against a fixed table, creates new
// identities on signup, and persists the current user under
// common.SessionKey in a storage.Store. There is at most one current user;
// login and signup replace it wholesale and logout removes it.
//
// Credentials are plaintext and never leave the process: the persisted
// record carries only id, email and name.
package auth
