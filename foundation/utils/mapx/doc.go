// Package mapx provides small generic helpers for option maps.
//
// Package: mapx
// Title: Generic Map Helpers
// Description: Sorted key listing, shallow copies and left-to-right overlay
//              merges. Option sets, preset tables and cache fingerprints all
//              need a stable key order, which Go map iteration does not give.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with core map utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers the option layer uses
package mapx
