// Package lists manages the user-curated domain lists of the appliance.
//
// There are three lists: the whitelist (Allow), the blacklist (Deny) and the
// regex list (Pattern). Each list carries its own acceptance rule and its own
// way of making the running resolver pick up a change:
//
//   - Allow and Deny accept hostnames only. A change triggers a gravity reload
//     scoped to the changed list.
//   - Pattern accepts any non-empty expression. A change asks the resolver to
//     recompile its regex filters over the control channel.
//
// Allow and Deny are mutually exclusive: adding a domain to one removes it
// from the other.
//
// # Storage
//
// Entries are kept by a Repository. Three backends exist:
//
//   - FileRepository: one plain text file per list, one entry per line
//   - SQLiteRepository: a single table in an SQLite database
//   - MemoryRepository: process memory, for dry runs and tests
//
// # Example Usage
//
//	repo := lists.NewFileRepository(map[lists.List]string{
//	    lists.Allow:   "/etc/pihole/whitelist.txt",
//	    lists.Deny:    "/etc/pihole/blacklist.txt",
//	    lists.Pattern: "/etc/pihole/regex.list",
//	})
//	svc := lists.NewService(repo, reloader, ftlClient)
//	if err := svc.Add(ctx, lists.Deny, "ads.example.com"); err != nil {
//	    return err
//	}
//
// A successful mutation is committed before the resolver reaction runs, so a
// failed reaction leaves the repository ahead of the live resolver.
package lists
