// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyCompleted          = ExistsError("instance already completed")
	AlreadyInitialised        = ExistsError("already initialised")
	CertificateFileExists     = ExistsError("certificate file already exists")
	CryptoFailed              = ProcessError("encryption failed")
	DatabaseIsNotSet          = ProcessError("database is not set")
	IdentityNameAlreadyExists = ExistsError("identity name already exists")
	IdentityNameNotFound      = NotFoundError("identity name not found")
	InstanceAlreadyDeployed   = ExistsError("instance already deployed")
	InstanceCreationFailed    = ProcessError("instance creation failed")
	InstanceNotFound          = NotFoundError("instance not found")
	InstanceNotOwned          = PermissionError("instance not owned by caller")
	InvalidActionName         = InvalidError("invalid action name")
	InvalidAddress            = InvalidError("invalid address")
	InvalidAddressLength      = InvalidError("invalid address length")
	InvalidChecksum           = InvalidError("invalid checksum")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidEventKind          = InvalidError("invalid event kind")
	InvalidIdentifier         = InvalidError("invalid identifier")
	InvalidIdentifierLength   = InvalidError("invalid identifier length")
	InvalidIpAddress          = InvalidError("invalid IP address")
	InvalidLevelScript        = InvalidError("invalid level script")
	InvalidPasswordLength     = InvalidError("invalid password length")
	InvalidPortNumber         = InvalidError("invalid port number")
	InvalidPrivateKeyFile     = InvalidError("invalid private key file")
	InvalidPublicKeyFile      = InvalidError("invalid public key file")
	InvalidSalt               = InvalidError("invalid salt")
	InvalidSeed               = InvalidError("invalid seed")
	InvalidSignature          = InvalidError("invalid signature")
	InvalidStateRecord        = InvalidError("invalid state record")
	InvalidStructPointer      = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists      = ExistsError("key file already exists")
	LevelAlreadyConfigured    = ExistsError("level already configured")
	LevelNotFound             = NotFoundError("level not found")
	LevelNotRegistered        = NotFoundError("level not registered")
	LevelScriptInUse          = ExistsError("level script already in use")
	MissingParameters         = InvalidError("missing parameters")
	MissingStatistics         = NotFoundError("statistics ledger not set")
	NotInitialised            = NotFoundError("not initialised")
	NotPrivateKey             = InvalidError("identity has no private key")
	PasswordMismatch          = InvalidError("password mismatch")
	RateLimiting              = InvalidError("rate limiting")
	SignatureExpired          = InvalidError("signature expired")
	TransactionAlreadyStarted = ProcessError("transaction already started")
	TransactionNotStarted     = ProcessError("transaction not started")
	Unauthorized              = PermissionError("unauthorized")
	ValidationFailed          = ProcessError("validation failed")
	WrongPassword             = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
