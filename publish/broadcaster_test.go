// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	parts [][]interface{}
	err   error
}

func (r *recorder) SendMessage(parts ...interface{}) (int, error) {
	if nil != r.err {
		return 0, r.err
	}
	r.parts = append(r.parts, parts)
	return len(parts), nil
}

func TestSendFrames(t *testing.T) {
	r4 := &recorder{}
	r6 := &recorder{}

	err := send([]sender{r4, r6}, "testing", "stake", []byte(`{"amount":"5"}`))
	assert.Nil(t, err, "send")

	expected := []interface{}{"testing", "stake", []byte(`{"amount":"5"}`)}
	assert.Equal(t, [][]interface{}{expected}, r4.parts, "IPv4 frames")
	assert.Equal(t, [][]interface{}{expected}, r6.parts, "IPv6 frames")
}

func TestSendError(t *testing.T) {
	failed := errors.New("socket closed")
	err := send([]sender{&recorder{err: failed}}, "testing", "vote")
	assert.Equal(t, failed, err, "error not returned")
}
