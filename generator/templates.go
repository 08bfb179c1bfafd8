// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import (
	"log"
	"text/template"
)

// Templates from source for zero-config usage
const reportTemplate = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
  </head>
  <body>
    <main>
      <h1>{{.Title}}</h1>
      <div>
      {{.Content}}
      </div>
    </main>
    <footer>
      <div>Page updated on {{.DateUpdated}}</div>
    </footer>
  </body>
</html>
`

// NewTemplateMap builds a template map, preferring templates found in
// templDir over the embedded defaults
func NewTemplateMap(templDir string) map[string]*template.Template {
	templateMap := make(map[string]*template.Template)
	tNames := map[string]string{
		"report-template.html": reportTemplate,
	}
	if len(templDir) > 0 {
		for tName, defTmpl := range tNames {
			fileName := templDir + "/" + tName
			tmpl, err := template.New(tName).ParseFiles(fileName)
			if err != nil {
				log.Printf("NewTemplateMap: error parsing template, using default %s: %v",
					tName, err)
				tmpl = template.Must(template.New(tName).Parse(defTmpl))
			}
			templateMap[tName] = tmpl
		}
	} else {
		for tName, defTmpl := range tNames {
			tmpl := template.Must(template.New(tName).Parse(defTmpl))
			templateMap[tName] = tmpl
		}
	}
	return templateMap
}
