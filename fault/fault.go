// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ArithmeticError GenericError
type AuthorityError GenericError
type ExistsError GenericError
type FundsError GenericError
type InvalidError GenericError
type LengthError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse       = ExistsError("account already in use")
	ErrAlreadyInitialised        = ProcessError("already initialised")
	ErrAlreadySold               = StateError("listing already sold")
	ErrAmountTooSmall            = InvalidError("amount must be greater than zero")
	ErrAssetIsTokenMint          = InvalidError("asset id is the reward token mint")
	ErrAssetNotFound             = NotFoundError("asset not found")
	ErrAuthorityMismatch         = AuthorityError("authority proof does not match address")
	ErrCannotDecodeAccount       = InvalidError("cannot decode account")
	ErrCertificateFileExists     = ExistsError("certificate file already exists")
	ErrCertificateFileNotFound   = NotFoundError("certificate file not found")
	ErrChecksumMismatch          = InvalidError("checksum mismatch")
	ErrConfigurationNotFound     = NotFoundError("configuration file not found")
	ErrConnectionLimitReached    = ProcessError("connection limit reached")
	ErrCryptoFailed              = ProcessError("crypto failed")
	ErrDailyLimitExceeded        = LimitError("daily reward limit exceeded")
	ErrDescriptionTooLong        = LengthError("description too long")
	ErrIdentityNameAlreadyExists = ExistsError("identity name already exists")
	ErrIdentityNameNotFound      = NotFoundError("identity name not found")
	ErrIncompatibleOptions       = InvalidError("incompatible options")
	ErrInvalidPasswordLength     = InvalidError("invalid password length")
	ErrInvalidSalt               = InvalidError("invalid salt")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidIPAddress          = InvalidError("invalid IP address")
	ErrInsufficientFunds         = FundsError("insufficient funds")
	ErrInvalidChain              = InvalidError("invalid chain")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidKeyLength          = InvalidError("invalid key length")
	ErrInvalidPrivateKey         = InvalidError("invalid private key")
	ErrInvalidPortNumber         = InvalidError("invalid port number")
	ErrInvalidPrivateKeyFile     = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile      = InvalidError("invalid public key file")
	ErrInvalidSignature          = InvalidError("invalid signature")
	ErrInvalidVotingPeriod       = InvalidError("voting period must be greater than zero")
	ErrKeyFileAlreadyExists      = ExistsError("key file already exists")
	ErrListingNotFound           = NotFoundError("listing not found")
	ErrMintMismatch              = InvalidError("token mint mismatch")
	ErrMissingParameters         = InvalidError("missing parameters")
	ErrNameTooLong               = LengthError("name too long")
	ErrNoReleasableAmount        = StateError("no rewards to release")
	ErrNoViableBump              = ProcessError("unable to find a viable bump for derived address")
	ErrNotInitialised            = ProcessError("not initialised")
	ErrNotOwner                  = AuthorityError("signer does not own account")
	ErrNotPrivateKey             = InvalidError("not private key")
	ErrNothingStaked             = StateError("nothing staked")
	ErrOverflow                  = ArithmeticError("arithmetic overflow")
	ErrPasswordMismatch          = InvalidError("password mismatch")
	ErrProposalNotFound          = NotFoundError("proposal not found")
	ErrRateLimiting              = LimitError("rate limiting")
	ErrRecordTooLarge            = LengthError("record exceeds account space")
	ErrRewardTrackerNotFound     = NotFoundError("reward tracker not found")
	ErrSeedTooLong               = LengthError("seed too long")
	ErrStakeEntryNotFound        = NotFoundError("stake entry not found")
	ErrSymbolTooLong             = LengthError("symbol too long")
	ErrTitleTooLong              = LengthError("title too long")
	ErrTokenAccountNotFound      = NotFoundError("token account not found")
	ErrTooManySeeds              = LengthError("too many seeds")
	ErrTransactionAlreadyExists  = ExistsError("transaction already exists")
	ErrTransactionNotInUse       = ProcessError("transaction not in use")
	ErrTruncatedRecord           = RecordError("truncated record")
	ErrURITooLong                = LengthError("uri too long")
	ErrUnexpectedRecordType      = RecordError("unexpected record type")
	ErrUnknownInstruction        = InvalidError("unknown instruction")
	ErrVestingEntryNotFound      = NotFoundError("vesting entry not found")
	ErrVestingNotStarted         = StateError("vesting has not started yet")
	ErrVoteRecordNotFound        = NotFoundError("vote record not found")
	ErrVotingClosed              = StateError("voting closed")
	ErrWrongAssetAmount          = InvalidError("asset amount must be exactly one unit")
	ErrWrongPassword             = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ArithmeticError) Error() string { return string(e) }
func (e AuthorityError) Error() string  { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e FundsError) Error() string      { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e LimitError) Error() string      { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }
func (e StateError) Error() string      { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrArithmetic(e error) bool { var x ArithmeticError; return errors.As(e, &x) }
func IsErrAuthority(e error) bool  { var x AuthorityError; return errors.As(e, &x) }
func IsErrExists(e error) bool     { var x ExistsError; return errors.As(e, &x) }
func IsErrFunds(e error) bool      { var x FundsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool    { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool     { var x LengthError; return errors.As(e, &x) }
func IsErrLimit(e error) bool      { var x LimitError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool   { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool    { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool     { var x RecordError; return errors.As(e, &x) }
func IsErrState(e error) bool      { var x StateError; return errors.As(e, &x) }
