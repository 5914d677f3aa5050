// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package bow provides a Borrowed-Or-oWned value container.
//
// A [Bow] lets a type defer the decision of whether some piece of data is
// owned by it or merely referenced, without requiring that data to support
// being cloned.
//
// # Basic Usage
//
//	type Server struct {
//	    cfg bow.Bow[Config]
//	}
//
//	// Share a Config owned by someone else.
//	func FromShared(cfg *Config) *Server {
//	    return &Server{cfg: bow.Borrowed(cfg)}
//	}
//
//	// Take ownership of a Config.
//	func FromOwned(cfg Config) *Server {
//	    return &Server{cfg: bow.Owned(cfg)}
//	}
//
// Both cases read the same way:
//
//	addr := s.cfg.Get().Addr
//
// Mutation is only possible for owned values and must be checked for:
//
//	if cfg, ok := s.cfg.BorrowMut(); ok {
//	    cfg.Addr = ":8080"
//	}
//
// # Capabilities
//
// Comparison, ordering and hashing are provided as generic functions
// constrained on the enclosed type, see [Equal], [Compare] and [Hash].
// They, along with formatting and logging, only ever look at the enclosed
// value. An owned 5 and a borrowed 5 are equal, hash the same and print
// the same.
//
// # Lifetimes
//
// A borrowed Bow holds an ordinary Go pointer. The garbage collector keeps
// the referenced value alive for at least as long as the Bow, so a Bow can
// never dangle.
package bow
