// Package recordio reads and writes repository records as JSON or YAML.
//
// # Overview
//
// Records written by `gitsocial fetch` can be rendered later without network
// access. Both formats use the GitHub REST field names, with the owner
// flattened to its login:
//
//	name: gitsocial
//	owner: JasonLovesDoggo
//	description: A GitHub card generator
//	language: TypeScript
//	stargazers_count: 42
//	forks_count: 3
//	open_issues_count: 1
//	topics: [nextjs, canvas]
//	contributors:
//	  - login: alice
//	    avatar_url: https://avatars.githubusercontent.com/u/1
//	created_at: 2023-01-15T00:00:00Z
//
// Every field is optional; absent fields fall back to placeholder text when
// the card is drawn.
//
// # Import and Export
//
// [Import] and [Export] pick the format from the file extension (".json",
// ".yaml", ".yml"). [Read] and [Write] take the format explicitly and work
// on any reader or writer:
//
//	rec, err := recordio.Import("record.yaml")
//	if err != nil {
//	    return err
//	}
//	err = recordio.Write(os.Stdout, rec, recordio.JSON)
package recordio
