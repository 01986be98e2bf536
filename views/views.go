// Package views provides the default templ components for the portfolio
// engine. Sites that want custom markup can supply their own
// portfolio.ViewFuncs instead; this package is the reference look.
package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/svatsa/portfolio"
)

// Default returns the stock view set for the given site configuration.
func Default(cfg portfolio.SiteConfig) portfolio.ViewFuncs {
	return portfolio.ViewFuncs{
		Portfolio: func(data portfolio.Payload, highlightSlug string, siteURL string) templ.Component {
			return component(func(buf *bytes.Buffer) {
				renderPortfolio(buf, cfg, data, highlightSlug)
			})
		},
		AdminLogin: func(showError bool, csrfToken string) templ.Component {
			return component(func(buf *bytes.Buffer) {
				renderAdminLogin(buf, cfg, showError, csrfToken)
			})
		},
		AdminDashboard: func(sections []portfolio.Section, skills []portfolio.Skill, message string, csrfToken string) templ.Component {
			return component(func(buf *bytes.Buffer) {
				renderAdminDashboard(buf, cfg, sections, skills, message, csrfToken)
			})
		},
		NotFound: func() templ.Component {
			return component(func(buf *bytes.Buffer) {
				renderMessagePage(buf, cfg, "404", "Page not found", "The page you are looking for does not exist.")
			})
		},
		ServerError: func() templ.Component {
			return component(func(buf *bytes.Buffer) {
				renderMessagePage(buf, cfg, "500", "Something went wrong", "An unexpected error occurred. Please try again later.")
			})
		},
	}
}

func component(render func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		render(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

func renderHead(buf *bytes.Buffer, title, description, jsonLD string) {
	buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
	buf.WriteString("<meta charset=\"utf-8\"/>")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
	buf.WriteString("<title>" + esc(title) + "</title>")
	if description != "" {
		buf.WriteString("<meta name=\"description\" content=\"" + esc(description) + "\"/>")
	}
	buf.WriteString("<meta property=\"og:title\" content=\"" + esc(title) + "\"/>")
	buf.WriteString("<meta property=\"og:type\" content=\"website\"/>")
	buf.WriteString("<link rel=\"icon\" href=\"/favicon.svg\" type=\"image/svg+xml\"/>")
	buf.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\"/>")
	if jsonLD != "" {
		buf.WriteString("<script type=\"application/ld+json\">" + jsonLD + "</script>")
	}
	buf.WriteString("</head>")
}

func renderFooter(buf *bytes.Buffer, cfg portfolio.SiteConfig) {
	buf.WriteString("<footer class=\"site-footer\"><p>&copy; " + esc(cfg.Author))
	if cfg.Author == "" {
		buf.WriteString(esc(cfg.Name))
	}
	buf.WriteString("</p></footer>")
}

func renderPortfolio(buf *bytes.Buffer, cfg portfolio.SiteConfig, data portfolio.Payload, highlightSlug string) {
	renderHead(buf, cfg.Name, cfg.Description, portfolio.PersonJsonLD(cfg))

	buf.WriteString("<body data-highlight=\"" + esc(highlightSlug) + "\">")

	// Sticky nav over every published section.
	buf.WriteString("<nav class=\"site-nav\"><ul>")
	for _, sec := range data.Sections {
		buf.WriteString("<li><a href=\"/sections/" + PathEscape(sec.Slug) + "/\">" + esc(sec.Title) + "</a></li>")
	}
	buf.WriteString("</ul></nav>")

	if !data.Live {
		buf.WriteString("<div class=\"preview-badge\">Showing sample content</div>")
	}

	buf.WriteString("<main>")
	for i, sec := range data.Sections {
		if i == 0 {
			renderIntro(buf, sec)
			continue
		}
		renderSection(buf, sec)
	}
	renderSkills(buf, data.Skills)
	buf.WriteString("</main>")

	renderFooter(buf, cfg)
	buf.WriteString("<script src=\"/public/slideshow.js\" defer></script>")
	buf.WriteString("<script src=\"/public/highlight.js\" defer></script>")
	buf.WriteString("</body></html>")
}

// renderIntro renders the first section as the hero banner.
func renderIntro(buf *bytes.Buffer, sec portfolio.Section) {
	buf.WriteString("<header id=\"section-" + esc(sec.Slug) + "\" class=\"hero\">")
	buf.WriteString("<h1>" + esc(sec.Title) + "</h1>")
	if sec.Description != "" {
		buf.WriteString("<p class=\"hero-tagline\">" + esc(sec.Description) + "</p>")
	}
	for _, block := range sec.Content {
		if block.Heading != "" {
			buf.WriteString("<h2>" + esc(block.Heading) + "</h2>")
		}
		if block.BodyText != "" {
			buf.WriteString("<p>" + esc(block.BodyText) + "</p>")
		}
	}
	buf.WriteString("</header>")
}

func renderSection(buf *bytes.Buffer, sec portfolio.Section) {
	buf.WriteString("<section id=\"section-" + esc(sec.Slug) + "\" class=\"portfolio-section\">")
	buf.WriteString("<h2>" + esc(sec.Title) + "</h2>")
	if sec.Description != "" {
		buf.WriteString("<p class=\"section-description\">" + esc(sec.Description) + "</p>")
	}
	for _, block := range sec.Content {
		buf.WriteString("<article class=\"content-block\">")
		if block.Heading != "" {
			buf.WriteString("<h3>" + esc(block.Heading) + "</h3>")
		}
		if block.BodyText != "" {
			buf.WriteString("<p>" + esc(block.BodyText) + "</p>")
		}
		buf.WriteString("</article>")
	}
	if len(sec.Images) > 0 {
		renderGallery(buf, sec)
	}
	buf.WriteString("</section>")
}

// renderGallery emits the markup that embedded slideshow.js drives: one
// [data-slide] per image, rotating inside a [data-slideshow] container.
func renderGallery(buf *bytes.Buffer, sec portfolio.Section) {
	buf.WriteString("<div class=\"gallery\" data-slideshow>")
	for i, img := range sec.Images {
		opacity := "0"
		if i == 0 {
			opacity = "1"
		}
		alt := img.AltText
		if alt == "" {
			alt = sec.Title
		}
		buf.WriteString("<figure data-slide style=\"opacity:" + opacity + "\">")
		buf.WriteString("<img src=\"" + esc(img.URL) + "\" alt=\"" + esc(alt) + "\" loading=\"lazy\" decoding=\"async\"/>")
		if img.Caption != "" {
			buf.WriteString("<figcaption>" + esc(img.Caption) + "</figcaption>")
		}
		buf.WriteString("</figure>")
	}
	if len(sec.Images) > 1 {
		buf.WriteString("<span class=\"slide-counter\" data-slide-counter>1/" + strconv.Itoa(len(sec.Images)) + "</span>")
	}
	buf.WriteString("</div>")
}

func renderSkills(buf *bytes.Buffer, skills []portfolio.Skill) {
	if len(skills) == 0 {
		return
	}
	core, tools := SkillsByCategory(skills)
	buf.WriteString("<section id=\"section-skills\" class=\"skills\"><h2>Skills</h2>")
	renderSkillGroup(buf, "Core Competencies", core)
	renderSkillGroup(buf, "Tools", tools)
	buf.WriteString("</section>")
}

func renderSkillGroup(buf *bytes.Buffer, title string, skills []portfolio.Skill) {
	if len(skills) == 0 {
		return
	}
	buf.WriteString("<div class=\"skill-group\"><h3>" + esc(title) + "</h3><ul>")
	for _, s := range skills {
		buf.WriteString("<li>" + esc(s.Name) + "</li>")
	}
	buf.WriteString("</ul></div>")
}

func renderMessagePage(buf *bytes.Buffer, cfg portfolio.SiteConfig, code, title, detail string) {
	renderHead(buf, title+" | "+cfg.Name, "", "")
	buf.WriteString("<body><main class=\"message-page\">")
	buf.WriteString("<h1>" + esc(code) + "</h1>")
	buf.WriteString("<p>" + esc(title) + "</p>")
	buf.WriteString("<p class=\"detail\">" + esc(detail) + "</p>")
	buf.WriteString("<a href=\"/\">Back to home</a>")
	buf.WriteString("</main>")
	renderFooter(buf, cfg)
	buf.WriteString("</body></html>")
}

func renderAdminLogin(buf *bytes.Buffer, cfg portfolio.SiteConfig, showError bool, csrfToken string) {
	renderHead(buf, "Admin Login | "+cfg.Name, "", "")
	buf.WriteString("<body><main class=\"admin-login\">")
	buf.WriteString("<h1>Admin Login</h1>")
	if showError {
		buf.WriteString("<p class=\"error\">Invalid email or password.</p>")
	}
	buf.WriteString("<form method=\"POST\" action=\"/admin/login/\">")
	buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\"/>")
	buf.WriteString("<label>Email<input type=\"email\" name=\"email\" required autocomplete=\"username\"/></label>")
	buf.WriteString("<label>Password<input type=\"password\" name=\"password\" required autocomplete=\"current-password\"/></label>")
	buf.WriteString("<button type=\"submit\">Sign in</button>")
	buf.WriteString("</form></main></body></html>")
}

func renderAdminDashboard(buf *bytes.Buffer, cfg portfolio.SiteConfig, sections []portfolio.Section, skills []portfolio.Skill, message string, csrfToken string) {
	renderHead(buf, "Admin | "+cfg.Name, "", "")
	buf.WriteString("<body class=\"admin\">")
	buf.WriteString("<header class=\"admin-header\"><h1>Admin Console</h1>")
	buf.WriteString("<form method=\"POST\" action=\"/admin/logout/\">")
	buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\"/>")
	buf.WriteString("<button type=\"submit\">Log out</button></form></header>")

	if message != "" {
		buf.WriteString("<p class=\"flash\">" + esc(message) + "</p>")
	}

	buf.WriteString("<main>")
	renderAdminStorage(buf)
	renderAdminSections(buf, sections, csrfToken)
	renderAdminSkills(buf, skills)
	buf.WriteString("</main>")
	buf.WriteString(adminScript)
	buf.WriteString("</body></html>")
}

func renderAdminStorage(buf *bytes.Buffer) {
	buf.WriteString("<section class=\"storage\"><h2>Storage</h2>")
	buf.WriteString("<p id=\"storage-summary\">Loading…</p>")
	buf.WriteString("<progress id=\"storage-bar\" max=\"100\" value=\"0\"></progress>")
	buf.WriteString("</section>")
}

func renderAdminSections(buf *bytes.Buffer, sections []portfolio.Section, csrfToken string) {
	buf.WriteString("<section class=\"sections\"><h2>Sections</h2>")

	buf.WriteString("<form method=\"POST\" action=\"/admin/sections/\" class=\"section-create\">")
	buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\"/>")
	buf.WriteString("<input type=\"text\" name=\"title\" placeholder=\"New section title\" required/>")
	buf.WriteString("<button type=\"submit\">Add section</button>")
	buf.WriteString("</form>")

	for _, sec := range sections {
		buf.WriteString("<details class=\"section-editor\" data-section-id=\"" + esc(sec.ID) + "\">")
		status := "draft"
		if sec.Published {
			status = "published"
		}
		buf.WriteString("<summary>" + esc(sec.Title) + " <small>(" + status + ")</small></summary>")

		buf.WriteString("<form class=\"section-form\" data-section-id=\"" + esc(sec.ID) + "\">")
		buf.WriteString("<label>Title<input type=\"text\" name=\"title\" value=\"" + esc(sec.Title) + "\"/></label>")
		buf.WriteString("<label>Description<textarea name=\"description\">" + esc(sec.Description) + "</textarea></label>")
		buf.WriteString("<div class=\"blocks\">")
		for _, block := range sec.Content {
			buf.WriteString("<fieldset data-block>")
			buf.WriteString("<input type=\"text\" name=\"heading\" value=\"" + esc(block.Heading) + "\" placeholder=\"Heading\"/>")
			buf.WriteString("<textarea name=\"bodyText\" placeholder=\"Body\">" + esc(block.BodyText) + "</textarea>")
			buf.WriteString("</fieldset>")
		}
		buf.WriteString("</div>")
		buf.WriteString("<button type=\"button\" data-add-block>Add block</button>")
		buf.WriteString("<button type=\"submit\">Save</button>")
		buf.WriteString("</form>")

		buf.WriteString("<form method=\"POST\" action=\"/admin/images/upload/\" enctype=\"multipart/form-data\" class=\"image-upload\">")
		buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\"/>")
		buf.WriteString("<input type=\"hidden\" name=\"sectionId\" value=\"" + esc(sec.ID) + "\"/>")
		buf.WriteString("<input type=\"file\" name=\"images\" accept=\"image/*\" multiple/>")
		buf.WriteString("<button type=\"submit\">Upload images</button>")
		buf.WriteString("</form>")

		if len(sec.Images) > 0 {
			buf.WriteString("<ul class=\"image-list\">")
			for _, img := range sec.Images {
				buf.WriteString("<li><img src=\"" + esc(img.URL) + "\" alt=\"" + esc(img.AltText) + "\" width=\"120\"/>")
				buf.WriteString("<button type=\"button\" data-delete-image data-image-id=\"" + esc(img.ID) + "\" data-image-url=\"" + esc(img.URL) + "\">Delete</button></li>")
			}
			buf.WriteString("</ul>")
		}
		buf.WriteString("</details>")
	}
	buf.WriteString("</section>")
}

func renderAdminSkills(buf *bytes.Buffer, skills []portfolio.Skill) {
	buf.WriteString("<section class=\"skills-admin\"><h2>Skills</h2>")
	buf.WriteString("<form id=\"skill-create\">")
	buf.WriteString("<input type=\"text\" name=\"name\" placeholder=\"Skill name\" required/>")
	buf.WriteString("<select name=\"category\">")
	buf.WriteString("<option value=\"" + portfolio.SkillCore + "\">Core</option>")
	buf.WriteString("<option value=\"" + portfolio.SkillTool + "\">Tool</option>")
	buf.WriteString("</select>")
	buf.WriteString("<button type=\"submit\">Add skill</button>")
	buf.WriteString("</form>")

	buf.WriteString("<ul class=\"skill-list\">")
	for _, s := range skills {
		buf.WriteString("<li data-skill-id=\"" + esc(s.ID) + "\">")
		buf.WriteString(esc(s.Name) + " <small>(" + esc(s.Category) + ")</small>")
		buf.WriteString("<button type=\"button\" data-delete-skill>Delete</button>")
		buf.WriteString("</li>")
	}
	buf.WriteString("</ul></section>")
}

// adminScript drives the JSON admin APIs. Session auth covers these calls;
// CSRF tokens are only needed on the classic form posts.
const adminScript = `<script>
(function () {
  function postJSON(method, url, body) {
    return fetch(url, {
      method: method,
      headers: { "Content-Type": "application/json" },
      body: body ? JSON.stringify(body) : undefined,
      credentials: "same-origin",
    }).then(function (res) {
      if (!res.ok) throw new Error("request failed: " + res.status);
      return res.json();
    });
  }

  fetch("/api/storage/stats", { credentials: "same-origin" })
    .then(function (res) { return res.json(); })
    .then(function (stats) {
      var summary = document.getElementById("storage-summary");
      var bar = document.getElementById("storage-bar");
      if (summary) {
        summary.textContent =
          stats.formattedUsed + " of " + stats.formattedMax + " used (" +
          stats.fileCount + " files, " + stats.formattedRemaining + " free)";
      }
      if (bar) bar.value = stats.usedPercentage;
    })
    .catch(function () {
      var summary = document.getElementById("storage-summary");
      if (summary) summary.textContent = "Storage stats unavailable";
    });

  document.querySelectorAll("form.section-form").forEach(function (form) {
    form.addEventListener("submit", function (ev) {
      ev.preventDefault();
      var blocks = [];
      form.querySelectorAll("[data-block]").forEach(function (b) {
        blocks.push({
          heading: b.querySelector("[name=heading]").value,
          body_text: b.querySelector("[name=bodyText]").value,
        });
      });
      postJSON("POST", "/api/sections/update", {
        sectionId: form.getAttribute("data-section-id"),
        title: form.querySelector("[name=title]").value,
        description: form.querySelector("[name=description]").value,
        content: blocks,
      })
        .then(function () { window.location.reload(); })
        .catch(function (err) { alert(err.message); });
    });
    var add = form.querySelector("[data-add-block]");
    if (add) {
      add.addEventListener("click", function () {
        var fs = document.createElement("fieldset");
        fs.setAttribute("data-block", "");
        fs.innerHTML =
          '<input type="text" name="heading" placeholder="Heading"/>' +
          '<textarea name="bodyText" placeholder="Body"></textarea>';
        form.querySelector(".blocks").appendChild(fs);
      });
    }
  });

  var skillCreate = document.getElementById("skill-create");
  if (skillCreate) {
    skillCreate.addEventListener("submit", function (ev) {
      ev.preventDefault();
      postJSON("POST", "/api/skills", {
        name: skillCreate.querySelector("[name=name]").value,
        category: skillCreate.querySelector("[name=category]").value,
      })
        .then(function () { window.location.reload(); })
        .catch(function (err) { alert(err.message); });
    });
  }

  document.querySelectorAll("[data-delete-skill]").forEach(function (btn) {
    btn.addEventListener("click", function () {
      var id = btn.closest("[data-skill-id]").getAttribute("data-skill-id");
      postJSON("DELETE", "/api/skills/" + encodeURIComponent(id))
        .then(function () { window.location.reload(); })
        .catch(function (err) { alert(err.message); });
    });
  });

  document.querySelectorAll("[data-delete-image]").forEach(function (btn) {
    btn.addEventListener("click", function () {
      var id = btn.getAttribute("data-image-id");
      var url = btn.getAttribute("data-image-url");
      var csrf = document.querySelector("input[name=_csrf]");
      fetch("/admin/images/" + encodeURIComponent(id) + "/?url=" + encodeURIComponent(url), {
        method: "DELETE",
        credentials: "same-origin",
        headers: csrf ? { "X-CSRF-Token": csrf.value } : {},
      })
        .then(function (res) {
          if (!res.ok) throw new Error("delete failed: " + res.status);
          window.location.reload();
        })
        .catch(function (err) { alert(err.message); });
    });
  });
})();
</script>`
