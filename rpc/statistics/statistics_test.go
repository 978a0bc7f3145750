// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package statistics_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/fixtures"
	"github.com/bitmark-inc/challenged/rpc/mocks"
	"github.com/bitmark-inc/challenged/rpc/statistics"
	"github.com/bitmark-inc/logger"
)

func resolver(known account.Identifier, l statistics.Ledger) func(account.Identifier) (statistics.Ledger, bool) {
	return func(id account.Identifier) (statistics.Ledger, bool) {
		if id != known {
			return nil, false
		}
		return l, true
	}
}

func current(id account.Identifier, ok bool) func() (account.Identifier, bool) {
	return func() (account.Identifier, bool) {
		return id, ok
	}
}

func TestLevelUsesCurrentLedger(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().IsLevelRegistered(fixtures.Level1).Return(true).Times(1)
	l.EXPECT().TotalInstances(fixtures.Level1).Return(uint64(12)).Times(1)

	s := statistics.New(logger.New("test"), current(fixtures.Ledger, true), resolver(fixtures.Ledger, l))

	var reply statistics.LevelReply
	err := s.Level(&statistics.LevelArguments{Level: fixtures.Level1}, &reply)
	assert.Nil(t, err, "wrong Level")
	assert.True(t, reply.Registered, "wrong registered")
	assert.Equal(t, uint64(12), reply.Total, "wrong total")
}

func TestLevelNoLedger(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	s := statistics.New(logger.New("test"), current(account.Identifier{}, false), resolver(fixtures.Ledger, l))

	var reply statistics.LevelReply
	err := s.Level(&statistics.LevelArguments{Level: fixtures.Level1}, &reply)
	assert.Equal(t, fault.MissingStatistics, err, "no current ledger accepted")

	unknown := fixtures.Player1
	err = s.Level(&statistics.LevelArguments{Ledger: &unknown, Level: fixtures.Level1}, &reply)
	assert.Equal(t, fault.MissingStatistics, err, "unknown ledger accepted")
}

func TestPlayer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	instances := []account.Identifier{{1}, {2}}

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Instances(fixtures.Player1, fixtures.Level1, uint64(0), 2).Return(instances, uint64(2), nil).Times(1)
	l.EXPECT().Successes(fixtures.Player1, fixtures.Level1).Return(uint64(1)).Times(1)
	l.EXPECT().Failures(fixtures.Player1, fixtures.Level1).Return(uint64(3)).Times(1)
	l.EXPECT().InstanceCount(fixtures.Player1, fixtures.Level1).Return(uint64(2)).Times(1)

	ledger := fixtures.Ledger
	s := statistics.New(logger.New("test"), current(account.Identifier{}, false), resolver(fixtures.Ledger, l))

	arg := statistics.PlayerArguments{
		Ledger: &ledger,
		Player: fixtures.Player1,
		Level:  fixtures.Level1,
		Start:  0,
		Count:  2,
	}
	var reply statistics.PlayerReply
	err := s.Player(&arg, &reply)
	assert.Nil(t, err, "wrong Player")
	assert.Equal(t, uint64(1), reply.Successes, "wrong successes")
	assert.Equal(t, uint64(3), reply.Failures, "wrong failures")
	assert.Equal(t, uint64(2), reply.InstanceCount, "wrong instance count")
	assert.Equal(t, instances, reply.Instances, "wrong instances")
	assert.Equal(t, uint64(2), reply.NextStart, "wrong next start")

	arg.Count = 0
	err = s.Player(&arg, &reply)
	assert.Equal(t, fault.InvalidCount, err, "zero count accepted")
}
