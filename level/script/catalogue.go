// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
	"github.com/bitmark-inc/challenged/level"
	"github.com/bitmark-inc/logger"
)

// Configuration - one scripted level
type Configuration struct {
	Identifier string `gluamapper:"identifier" json:"identifier"`
	Script     string `gluamapper:"script" json:"script"`
}

// Set - the loaded scripted levels
type Set struct {
	sync.RWMutex
	log    *logger.L
	byID   map[account.Identifier]*Level
	byFile map[string]*Level
}

// Load - compile every configured script and add it to the catalogue
//
// script paths are expected to be absolute and each file may back
// only one level, otherwise reloading would reach just one of them
func Load(levels []Configuration, deployer level.Deployer, catalogue *level.Catalogue) (*Set, error) {
	s := &Set{
		log:    logger.New("script"),
		byID:   make(map[account.Identifier]*Level),
		byFile: make(map[string]*Level),
	}

	for _, c := range levels {
		id, err := account.ParseIdentifier(c.Identifier)
		if nil != err {
			s.log.Errorf("level identifier: %q  error: %s", c.Identifier, err)
			return nil, err
		}

		if _, ok := s.byID[id]; ok {
			s.log.Errorf("level: %v  configured twice", id)
			return nil, fault.LevelAlreadyConfigured
		}

		fileName := filepath.Clean(c.Script)
		if other, ok := s.byFile[fileName]; ok {
			s.log.Errorf("level: %v  script: %q  already used by: %v", id, fileName, other.Identifier())
			return nil, fault.LevelScriptInUse
		}

		l, err := New(id, fileName, deployer)
		if nil != err {
			s.log.Errorf("level: %v  script: %q  error: %s", id, fileName, err)
			return nil, err
		}

		s.byID[id] = l
		s.byFile[fileName] = l
		catalogue.Set(id, l)
	}
	return s, nil
}

// Get - a scripted level by identifier
func (s *Set) Get(id account.Identifier) (*Level, bool) {
	s.RLock()
	defer s.RUnlock()
	l, ok := s.byID[id]
	return l, ok
}

// Levels - all scripted levels in identifier order
func (s *Set) Levels() []*Level {
	s.RLock()
	defer s.RUnlock()
	levels := make([]*Level, 0, len(s.byID))
	for _, l := range s.byID {
		levels = append(levels, l)
	}
	sort.Slice(levels, func(i, j int) bool {
		a, b := levels[i].Identifier(), levels[j].Identifier()
		return bytes.Compare(a[:], b[:]) < 0
	})
	return levels
}

// Directories - distinct directories holding scripts
func (s *Set) Directories() []string {
	s.RLock()
	defer s.RUnlock()
	seen := make(map[string]struct{})
	dirs := make([]string, 0, len(s.byFile))
	for fileName := range s.byFile {
		d := filepath.Dir(fileName)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dirs = append(dirs, d)
	}
	return dirs
}

// Reload - recompile the level using a script file
//
// returns false if no level uses the file
func (s *Set) Reload(fileName string) (bool, error) {
	s.RLock()
	l, ok := s.byFile[filepath.Clean(fileName)]
	s.RUnlock()
	if !ok {
		return false, nil
	}
	return true, l.Reload()
}
