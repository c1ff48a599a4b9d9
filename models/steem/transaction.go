// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package steem

import (
	"fmt"
)

// Transaction header keys, in the order they are written.
const (
	KeyRefBlockNum    = "ref_block_num"
	KeyRefBlockPrefix = "ref_block_prefix"
	KeyExpiration     = "expiration"
	KeyExtensions     = "extensions"
	KeyOperations     = "operations"
)

// Transaction is an unresolved transaction, as carried by a signing request.
// Its reference block and expiration fields may still hold placeholders, and
// any of its operations may contain placeholder strings.
type Transaction struct {
	RefBlockNum    Field
	RefBlockPrefix Field
	Expiration     Field
	Extensions     Array
	Operations     []Operation

	// Extra holds any other top-level keys given by the producer, in order.
	Extra Object
}

// NewTransaction creates an unresolved transaction for the given operations,
// leaving the reference block and expiration to the signing application.
func NewTransaction(ops ...Operation) Transaction {

	tx := Transaction{
		RefBlockNum:    Placeholder(PlaceholderRefBlockNum),
		RefBlockPrefix: Placeholder(PlaceholderRefBlockPrefix),
		Expiration:     Placeholder(PlaceholderExpiration),
		Extensions:     Array{},
		Operations:     ops,
	}

	return tx
}

// Value returns the wire representation of the transaction.
func (t Transaction) Value() Object {
	return transactionObject(t.RefBlockNum.Value(), t.RefBlockPrefix.Value(), t.Expiration.Value(), t.Extensions, t.Operations, t.Extra)
}

// TransactionFromValue converts a decoded value into an unresolved
// transaction. The reference block fields, the expiration and the operations
// are required.
func TransactionFromValue(v Value) (Transaction, error) {

	obj, ok := v.(Object)
	if !ok {
		return Transaction{}, fmt.Errorf("transaction is not an object (%T)", v)
	}

	var tx Transaction
	found := make(map[string]struct{}, 4)
	for _, member := range obj {
		switch member.Key {
		case KeyRefBlockNum:
			tx.RefBlockNum = FieldFrom(member.Value)
			found[member.Key] = struct{}{}
		case KeyRefBlockPrefix:
			tx.RefBlockPrefix = FieldFrom(member.Value)
			found[member.Key] = struct{}{}
		case KeyExpiration:
			tx.Expiration = FieldFrom(member.Value)
			found[member.Key] = struct{}{}
		case KeyOperations:
			ops, err := OperationsFromValue(member.Value)
			if err != nil {
				return Transaction{}, fmt.Errorf("invalid transaction operations: %w", err)
			}
			tx.Operations = ops
			found[member.Key] = struct{}{}
		case KeyExtensions:
			ext, ok := member.Value.(Array)
			if !ok {
				return Transaction{}, fmt.Errorf("transaction extensions are not an array (%T)", member.Value)
			}
			tx.Extensions = ext
		default:
			tx.Extra = append(tx.Extra, member)
		}
	}

	for _, key := range []string{KeyRefBlockNum, KeyRefBlockPrefix, KeyExpiration, KeyOperations} {
		_, ok := found[key]
		if !ok {
			return Transaction{}, fmt.Errorf("transaction is missing required field %q", key)
		}
	}
	if tx.Extensions == nil {
		tx.Extensions = Array{}
	}

	return tx, nil
}

// MarshalJSON implements json.Marshaler.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return Marshal(t.Value())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	v, err := Unmarshal(data)
	if err != nil {
		return err
	}
	tx, err := TransactionFromValue(v)
	if err != nil {
		return err
	}
	*t = tx
	return nil
}

// ResolvedTransaction is a transaction where all header fields hold concrete
// values, ready to be serialized and signed.
type ResolvedTransaction struct {
	RefBlockNum    Value
	RefBlockPrefix Value
	Expiration     Value
	Extensions     Array
	Operations     []Operation
	Extra          Object
}

// Value returns the wire representation of the transaction.
func (r ResolvedTransaction) Value() Object {
	return transactionObject(r.RefBlockNum, r.RefBlockPrefix, r.Expiration, r.Extensions, r.Operations, r.Extra)
}

// MarshalJSON implements json.Marshaler.
func (r ResolvedTransaction) MarshalJSON() ([]byte, error) {
	return Marshal(r.Value())
}

func transactionObject(num Value, prefix Value, expiration Value, ext Array, ops []Operation, extra Object) Object {

	if ext == nil {
		ext = Array{}
	}

	obj := make(Object, 0, 5+len(extra))
	obj = append(obj,
		Member{Key: KeyRefBlockNum, Value: num},
		Member{Key: KeyRefBlockPrefix, Value: prefix},
		Member{Key: KeyExpiration, Value: expiration},
		Member{Key: KeyExtensions, Value: ext},
		Member{Key: KeyOperations, Value: OperationsValue(ops)},
	)
	obj = append(obj, extra...)

	return obj
}
