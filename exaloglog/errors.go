/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package exaloglog

import "errors"

// Errors returned by this package are wrapped with the offending values; test for
// them with errors.Is.
var (
	ErrInvalidT              = errors.New("illegal t-parameter")
	ErrInvalidD              = errors.New("illegal d-parameter")
	ErrInvalidP              = errors.New("illegal p-parameter")
	ErrIncompatibleT         = errors.New("sketches have different t-parameters")
	ErrOperandTooCoarse      = errors.New("other sketch has smaller d- or p-parameter")
	ErrInvalidStateLength    = errors.New("state has an illegal length")
	ErrNilArgument           = errors.New("argument must not be nil")
	ErrInvalidArgument       = errors.New("illegal argument")
	ErrInvalidNumStdDev      = errors.New("numStdDev must be between 1 and 3, inclusive")
	ErrInvalidTokenParameter = errors.New("illegal token parameter")
)
