package scaffold

import (
	"io/fs"

	"github.com/caoforge/caoforge/pkg/templates"
)

// File is a single generated project file.
type File struct {
	Path    string
	Content string
	Mode    fs.FileMode
}

const packageJSONTemplate = `{
  "name": "{{PROJECT_NAME}}",
  "version": "0.1.0",
  "private": true,
  "type": "module",
  "scripts": {
    "build": "tsc -p tsconfig.json",
    "lint": "eslint .",
    "test": "vitest run",
    "test:watch": "vitest",
    "prepare": "husky"
  },
  "devDependencies": {
    "@types/node": "^22.0.0",
    "eslint": "^9.0.0",
    "husky": "^9.0.0",
    "prettier": "^3.0.0",
    "typescript": "^5.5.0",
    "vitest": "^2.0.0"
  }
}
`

const tsconfigJSON = `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "NodeNext",
    "moduleResolution": "NodeNext",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
    "forceConsistentCasingInFileNames": true,
    "declaration": true,
    "outDir": "dist",
    "rootDir": "src"
  },
  "include": ["src/**/*"],
  "exclude": ["node_modules", "dist"]
}
`

const eslintrcJSON = `{
  "root": true,
  "env": {
    "node": true,
    "es2022": true
  },
  "parserOptions": {
    "ecmaVersion": 2022,
    "sourceType": "module"
  },
  "extends": ["eslint:recommended"],
  "rules": {
    "no-unused-vars": ["error", { "argsIgnorePattern": "^_" }],
    "no-console": "off"
  }
}
`

const vitestConfigTS = `import { defineConfig } from 'vitest/config';

export default defineConfig({
  test: {
    include: ['src/**/*.test.ts', 'tests/**/*.test.ts'],
    environment: 'node',
    clearMocks: true,
  },
});
`

const huskyPreCommit = `#!/usr/bin/env sh
npm run lint && npm test
`

const gitignore = `node_modules/
dist/
coverage/
*.log
.env
.env.*
.DS_Store
`

const prettierrc = `{
  "semi": true,
  "singleQuote": true,
  "trailingComma": "all",
  "printWidth": 100
}
`

// Files returns the full scaffolding file set for a project name.
func Files(projectName string) []File {
	packageJSON := templates.Render(packageJSONTemplate, templates.Vars{
		templates.TokenProjectName: projectName,
	})

	return []File{
		{Path: "package.json", Content: packageJSON, Mode: 0o644},
		{Path: "tsconfig.json", Content: tsconfigJSON, Mode: 0o644},
		{Path: ".eslintrc.json", Content: eslintrcJSON, Mode: 0o644},
		{Path: "vitest.config.ts", Content: vitestConfigTS, Mode: 0o644},
		{Path: ".husky/pre-commit", Content: huskyPreCommit, Mode: 0o755},
		{Path: ".gitignore", Content: gitignore, Mode: 0o644},
		{Path: ".prettierrc", Content: prettierrc, Mode: 0o644},
	}
}
