// Package locale handles language preference for the clinic client: code
// normalization, a persisted preference store, and translation catalogs.
//
// # Architecture
//
// The package has three independent pieces:
//
//   - Normalize maps arbitrary language input (user typing, Accept-Language
//     values, stored preferences from older releases) onto one of the
//     supported codes using BCP 47 matching. Unknown input falls back to the
//     Turkish default rather than erroring.
//   - PrefStore persists the chosen code to a small file so the preference
//     survives restarts and logouts. Load never fails; a missing or corrupt
//     file simply yields the default.
//   - Catalog loads YAML translation files and resolves message keys with a
//     per-key fallback to the default language, so a partially translated
//     catalog never renders blank strings.
//
// # Usage
//
//	store := locale.NewPrefStore(filepath.Join(dir, "locale"))
//	sm := session.New(api, creds, session.WithLocaleStore(store))
//
//	catalog, err := locale.LoadCatalog(os.DirFS("translations"))
//	if err != nil {
//		return err
//	}
//	fmt.Println(catalog.T(sm.Locale(), "nav.appointments"))
package locale
