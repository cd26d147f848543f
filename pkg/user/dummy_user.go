// Copyright 2025 The VITA Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package user

import (
	"context"

	"github.com/vitabench/vita/pkg/model"
)

// DummyUser stops the conversation immediately. It pairs with the solo
// agent, which works from the task instructions instead of a dialogue.
type DummyUser struct{}

func NewDummyUser() *DummyUser { return &DummyUser{} }

func (u *DummyUser) InitState(history []model.Message) (*State, error) {
	return &State{Messages: append([]model.Message(nil), history...)}, nil
}

func (u *DummyUser) GenerateNext(ctx context.Context, incoming *model.Message, state *State) (model.Message, error) {
	if incoming != nil {
		state.Messages = append(state.Messages, *incoming)
	}
	stop := model.UserMessage(StopToken)
	state.Messages = append(state.Messages, stop)
	return stop, nil
}

func (u *DummyUser) SetSeed(seed int64) {}
