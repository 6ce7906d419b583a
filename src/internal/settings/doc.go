// Package settings reads the appliance settings store (setupVars.conf).
//
// The store is a flat KEY=VALUE mapping owned by the rest of the appliance;
// holectl only reads it. Typed access goes through Entry values, which carry
// the key name and the value used when the key is missing or empty:
//
//	store, err := settings.LoadFile("/etc/pihole/setupVars.conf")
//	if err != nil {
//	    return err
//	}
//	logging, err := settings.QueryLogging.IsTrue(store)
//	servers := settings.ReadSequence(store, settings.PiholeDNS)
//
// Numbered keys (PIHOLE_DNS_1, PIHOLE_DNS_2, ...) form a sequence that ends
// at the first missing or empty value; later keys are never consulted.
package settings
