// Package ocp demonstrates the Open/Closed Principle: modules should be
// extensible without modifying existing, depended-upon behavior.
//
// The fixture is a Book whose description and pricing need to grow. The
// smell, KindPrice, is a price function switching on a hard-coded list of
// book kinds; every new kind means editing the function everyone already
// depends on.
//
// The refactored forms extend without modification: Textbook embeds Book and
// adds study aids while Book stays untouched, and the DiscountPolicy registry
// lets callers plug in new pricing rules behind a stable interface.
package ocp
